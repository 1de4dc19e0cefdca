package config

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// NodeAddrKey is the http endpoint of the wallet node command interface
	NodeAddrKey = "NODE_ADDR"
	// NodeWsAddrKey is the websocket endpoint of the wallet node push-event stream
	NodeWsAddrKey = "NODE_WS_ADDR"
	// DatadirKey is the local data directory to store the internal state of the daemon
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// RefreshIntervalKey is the duration between periodic balance/coin snapshot refreshes
	RefreshIntervalKey = "REFRESH_INTERVAL"
	// SubmitDelayKey is the artificial pause before submitting a mutating operation
	SubmitDelayKey = "SUBMIT_DELAY"

	// DbLocation is the directory under the datadir holding the operation history store
	DbLocation = "db"
)

var vip *viper.Viper

var defaultDatadir = btcutil.AppDataDir("coinfold", false)

// InitConfig loads the environment into the package level viper instance
// and applies the defaults.
func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("COINFOLD")
	vip.AutomaticEnv()

	vip.SetDefault(NodeAddrKey, "http://127.0.0.1:9005")
	vip.SetDefault(NodeWsAddrKey, "ws://127.0.0.1:9004/ws")
	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(RefreshIntervalKey, 5*time.Second)
	vip.SetDefault(SubmitDelayKey, 3*time.Second)

	return validate()
}

func validate() error {
	if GetString(NodeAddrKey) == "" {
		return fmt.Errorf("%s must not be empty", NodeAddrKey)
	}
	if GetString(NodeWsAddrKey) == "" {
		return fmt.Errorf("%s must not be empty", NodeWsAddrKey)
	}
	if GetDuration(RefreshIntervalKey) <= 0 {
		return fmt.Errorf("%s must be positive", RefreshIntervalKey)
	}
	if GetDuration(SubmitDelayKey) < 0 {
		return fmt.Errorf("%s must not be negative", SubmitDelayKey)
	}
	return nil
}

// Set a value for the given key
func Set(key string, value interface{}) {
	vip.Set(key, value)
}

// GetString returns the value of the given key as string
func GetString(key string) string {
	return vip.GetString(key)
}

// GetInt returns the value of the given key as int
func GetInt(key string) int {
	return vip.GetInt(key)
}

// GetDuration returns the value of the given key as time.Duration
func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

// LogLevel returns the configured logrus level
func LogLevel() log.Level {
	return log.Level(GetInt(LogLevelKey))
}
