package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	log "github.com/sirupsen/logrus"

	"github.com/coinfold-network/coinfold-daemon/internal/core/application/ledger"
	"github.com/coinfold-network/coinfold-daemon/internal/core/application/planner"
	"github.com/coinfold-network/coinfold-daemon/internal/core/application/reconciler"
	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
	"github.com/coinfold-network/coinfold-daemon/internal/core/ports"
	nodebridge "github.com/coinfold-network/coinfold-daemon/internal/infrastructure/node-bridge"
	"github.com/coinfold-network/coinfold-daemon/internal/infrastructure/pubsub"
	dbbadger "github.com/coinfold-network/coinfold-daemon/internal/infrastructure/storage/db/badger"
)

type services struct {
	node       ports.NodeService
	ledgerSvc  *ledger.Service
	plannerSvc *planner.Service
	reconciler *reconciler.Service
	repo       domain.OperationRepository
}

// getServices wires the node bridge, the event bus pump, the operation
// store and the application services for one CLI invocation. The returned
// cleanup must be deferred by the caller.
func getServices() (*services, func(), error) {
	state, err := getState()
	if err != nil {
		return nil, nil, err
	}

	nodeAddr := state["node_addr"]
	wsAddr := state["node_ws_addr"]
	if nodeAddr == "" || wsAddr == "" {
		return nil, nil, fmt.Errorf("node address missing: try 'config init'")
	}

	node, err := nodebridge.NewService(nodeAddr, wsAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to node: %w", err)
	}

	db, err := dbbadger.NewDbManager(path.Join(coinfoldDataDir, "db"), nil)
	if err != nil {
		node.Close()
		return nil, nil, err
	}

	bus := pubsub.NewService()
	ctx, cancel := context.WithCancel(context.Background())
	go bus.Run(ctx, node.Notification())

	ledgerSvc, err := ledger.NewService(node.Query(), ledger.DefaultRefreshInterval)
	if err != nil {
		cancel()
		node.Close()
		db.Close()
		return nil, nil, err
	}

	plannerSvc, err := planner.NewService(
		node, db.OperationRepository(), ledgerSvc, planner.DefaultSubmitDelay,
	)
	if err != nil {
		cancel()
		node.Close()
		db.Close()
		return nil, nil, err
	}

	reconcilerSvc, err := reconciler.NewService(
		bus, db.OperationRepository(), ledgerSvc,
	)
	if err != nil {
		cancel()
		node.Close()
		db.Close()
		return nil, nil, err
	}

	cleanup := func() {
		cancel()
		node.Close()
		if err := db.Close(); err != nil {
			log.WithError(err).Warn("failed to close operation store")
		}
	}

	return &services{
		node:       node,
		ledgerSvc:  ledgerSvc,
		plannerSvc: plannerSvc,
		reconciler: reconcilerSvc,
		repo:       db.OperationRepository(),
	}, cleanup, nil
}

// resolveAndPrint hands the submit result to the reconciler and prints the
// terminal outcome. With noWait set, a pending operation is only announced:
// tracking is abandoned and the approval happens in the node's pending
// surface on its own.
func resolveAndPrint(
	svc *services, tokenID string, res *domain.SubmitResult, noWait bool,
) error {
	if res.IsPending() {
		fmt.Printf("operation pending approval, uid: %s\n", res.PendingUID)
		if noWait {
			return nil
		}
		fmt.Println("waiting for approval in the node's pending surface...")
	}

	outcome, err := svc.reconciler.Resolve(context.Background(), tokenID, res)
	if err != nil {
		return err
	}

	switch outcome.Status {
	case domain.StatusResolvedSuccess:
		fmt.Println("operation resolved: success")
		if len(outcome.Txn) > 0 {
			printRespJSON(outcome.Txn)
		}
	case domain.StatusResolvedFailure:
		fmt.Println("operation resolved: rejected")
	default:
		fmt.Printf("operation still %s\n", outcome.Status)
	}
	return nil
}

func printRespJSON(resp interface{}) {
	var out []byte
	switch v := resp.(type) {
	case json.RawMessage:
		var buf interface{}
		if err := json.Unmarshal(v, &buf); err != nil {
			fmt.Println(string(v))
			return
		}
		out, _ = json.MarshalIndent(buf, "", "\t")
	default:
		out, _ = json.MarshalIndent(resp, "", "\t")
	}
	fmt.Println(string(out))
}
