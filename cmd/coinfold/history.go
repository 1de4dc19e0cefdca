package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
)

var historyCmd = cli.Command{
	Name:  "history",
	Usage: "list submitted operations, most recent first",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "tokenid",
			Usage: "only list operations of this token",
		},
	},
	Action: historyAction,
}

func historyAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	var operations []domain.Operation
	if tokenID := ctx.String("tokenid"); tokenID != "" {
		operations, err = svc.repo.ListOperationsForToken(
			context.Background(), tokenID,
		)
	} else {
		operations, err = svc.repo.ListOperations(context.Background())
	}
	if err != nil {
		return err
	}

	printRespJSON(operations)
	return nil
}
