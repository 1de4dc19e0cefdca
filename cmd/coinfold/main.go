package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/urfave/cli/v2"
)

var (
	coinfoldDataDir = btcutil.AppDataDir("coinfold", false)
	statePath       = path.Join(coinfoldDataDir, "state.json")
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "coinfold CLI"
	app.Usage = "Command line interface for managing coins of a wallet node"
	app.Commands = append(
		app.Commands,
		&configCmd,
		&balanceCmd,
		&listCoinsCmd,
		&disabledCoinsCmd,
		&consolidateCmd,
		&manualConsolidateCmd,
		&splitCmd,
		&trackCmd,
		&untrackCmd,
		&historyCmd,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func getState() (map[string]string, error) {
	data := map[string]string{}

	file, err := ioutil.ReadFile(statePath)
	if err != nil {
		return nil, errors.New("get config state error: try 'config init'")
	}
	json.Unmarshal(file, &data)

	return data, nil
}

func setState(data map[string]string) error {
	if _, err := os.Stat(coinfoldDataDir); os.IsNotExist(err) {
		os.Mkdir(coinfoldDataDir, os.ModeDir|0755)
	}

	file, err := os.OpenFile(statePath, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	currentData, err := getState()
	if err != nil {
		return err
	}

	for key, value := range data {
		currentData[key] = value
	}

	content, err := json.Marshal(currentData)
	if err != nil {
		return err
	}
	if err := ioutil.WriteFile(statePath, content, 0644); err != nil {
		return err
	}

	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[coinfold] %v\n", err)
	os.Exit(1)
}
