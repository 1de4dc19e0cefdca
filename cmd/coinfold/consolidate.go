package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
	"github.com/coinfold-network/coinfold-daemon/pkg/mathutil"
)

var noWaitFlag = cli.BoolFlag{
	Name:  "no_wait",
	Usage: "do not wait for the approval of a pending operation",
}

var consolidateCmd = cli.Command{
	Name:  "consolidate",
	Usage: "consolidate many small coins of a token into fewer larger ones",
	Flags: []cli.Flag{
		&tokenIDFlag,
		&cli.IntFlag{
			Name:  "max_inputs",
			Usage: "max number of coins spent by the consolidation (3-20)",
			Value: domain.MaxConsolidationInputs,
		},
		&cli.IntFlag{
			Name:  "min_confirmations",
			Usage: "min confirmation depth of the spent coins",
			Value: 3,
		},
		&cli.IntFlag{
			Name:  "max_signatures",
			Usage: "max number of signatures (1-5)",
			Value: domain.MaxConsolidationSignatures,
		},
		&cli.StringFlag{
			Name:  "burn",
			Usage: "amount to burn with the consolidation",
			Value: "0",
		},
		&cli.BoolFlag{
			Name:  "check",
			Usage: "dry-run the consolidation first and abort if the transaction would be too big",
		},
		&noWaitFlag,
	},
	Action: consolidateAction,
}

var manualConsolidateCmd = cli.Command{
	Name:  "manualconsolidate",
	Usage: "consolidate an explicit list of coins into a single output",
	Flags: []cli.Flag{
		&tokenIDFlag,
		&cli.StringSliceFlag{
			Name:     "coinid",
			Usage:    "id of a coin to consolidate, repeatable",
			Required: true,
		},
		&noWaitFlag,
	},
	Action: manualConsolidateAction,
}

func consolidateAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	burn, err := mathutil.ParseAmount(ctx.String("burn"))
	if err != nil {
		return err
	}

	req := domain.ConsolidationRequest{
		TokenID:          ctx.String("tokenid"),
		MaxInputs:        ctx.Int("max_inputs"),
		MinConfirmations: ctx.Int("min_confirmations"),
		MaxSignatures:    ctx.Int("max_signatures"),
		Burn:             burn,
	}

	var res *domain.SubmitResult
	if ctx.Bool("check") {
		res, err = svc.plannerSvc.CheckConsolidation(context.Background(), req)
	} else {
		res, err = svc.plannerSvc.Consolidate(context.Background(), req)
	}
	if err != nil {
		return err
	}

	return resolveAndPrint(svc, req.TokenID, res, ctx.Bool("no_wait"))
}

func manualConsolidateAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	req := domain.ManualConsolidationRequest{
		TokenID: ctx.String("tokenid"),
		CoinIDs: ctx.StringSlice("coinid"),
	}

	res, err := svc.plannerSvc.ManualConsolidate(context.Background(), req)
	if err != nil {
		return err
	}

	return resolveAndPrint(svc, req.TokenID, res, ctx.Bool("no_wait"))
}
