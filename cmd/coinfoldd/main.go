package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/coinfold-network/coinfold-daemon/config"
	"github.com/coinfold-network/coinfold-daemon/internal/core/application/ledger"
	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
	nodebridge "github.com/coinfold-network/coinfold-daemon/internal/infrastructure/node-bridge"
	"github.com/coinfold-network/coinfold-daemon/internal/infrastructure/pubsub"
	dbbadger "github.com/coinfold-network/coinfold-daemon/internal/infrastructure/storage/db/badger"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	log.SetLevel(config.LogLevel())

	nodeSvc, err := nodebridge.NewService(
		config.GetString(config.NodeAddrKey),
		config.GetString(config.NodeWsAddrKey),
	)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to wallet node")
	}
	defer nodeSvc.Close()

	dbDir := filepath.Join(config.GetString(config.DatadirKey), config.DbLocation)
	db, err := dbbadger.NewDbManager(dbDir, nil)
	if err != nil {
		log.WithError(err).Fatal("failed to open operation store")
	}
	defer db.Close()

	ledgerSvc, err := ledger.NewService(
		nodeSvc.Query(), config.GetDuration(config.RefreshIntervalKey),
	)
	if err != nil {
		log.WithError(err).Fatal("failed to start ledger service")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := pubsub.NewService()
	go bus.Run(ctx, nodeSvc.Notification())
	go ledgerSvc.Start(ctx)
	go resolvePendingOperations(ctx, bus, db.OperationRepository(), ledgerSvc)

	log.Info("daemon started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	log.Info("exiting")
}

// resolvePendingOperations marks stored operations resolved when their
// approval event arrives, even if no CLI invocation is waiting on them.
func resolvePendingOperations(
	ctx context.Context, bus *pubsub.Service,
	repo domain.OperationRepository, ledgerSvc *ledger.Service,
) {
	events, cancel := bus.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if !event.IsPendingResolution() {
				continue
			}

			operation, err := repo.GetOperationByPendingUID(ctx, event.UID)
			if err != nil {
				log.WithError(err).Warnf(
					"failed to look up operation for pending uid %s", event.UID,
				)
				continue
			}
			if operation == nil {
				continue
			}

			if err := repo.ResolveOperation(ctx, event.UID, event.Accept); err != nil {
				log.WithError(err).Warnf(
					"failed to resolve operation for pending uid %s", event.UID,
				)
				continue
			}
			ledgerSvc.Invalidate(operation.TokenID)
			log.Infof(
				"operation %s resolved, accepted: %t", operation.ID, event.Accept,
			)
		}
	}
}
