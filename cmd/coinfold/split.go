package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
	"github.com/coinfold-network/coinfold-daemon/pkg/mathutil"
)

var splitCmd = cli.Command{
	Name:  "split",
	Usage: "split coins of a token into many smaller ones",
	Subcommands: []*cli.Command{
		{
			Name:  "total",
			Usage: "split a total amount evenly into a number of coins",
			Flags: []cli.Flag{
				&tokenIDFlag,
				&cli.StringFlag{
					Name:     "amount",
					Usage:    "total amount to split",
					Required: true,
				},
				&cli.IntFlag{
					Name:     "coins",
					Usage:    "number of coins to split into (min 2)",
					Required: true,
				},
				&noWaitFlag,
			},
			Action: splitTotalAction,
		},
		{
			Name:  "percoin",
			Usage: "split a fixed amount-per-coin times a number of coins",
			Flags: []cli.Flag{
				&tokenIDFlag,
				&cli.StringFlag{
					Name:     "amount_per_coin",
					Usage:    "amount of every created coin",
					Required: true,
				},
				&cli.IntFlag{
					Name:     "coins",
					Usage:    "number of coins to split into (min 2)",
					Required: true,
				},
				&noWaitFlag,
			},
			Action: splitPerCoinAction,
		},
		{
			Name: "custom",
			Usage: "split per-recipient amounts, each into a number of " +
				"coins (max 15 outputs in total)",
			Flags: []cli.Flag{
				&tokenIDFlag,
				&cli.StringSliceFlag{
					Name:     "to",
					Usage:    "recipient as <address>:<amount>, repeatable",
					Required: true,
				},
				&cli.IntFlag{
					Name:     "split",
					Usage:    "number of coins every recipient amount is divided into",
					Required: true,
				},
				&noWaitFlag,
			},
			Action: splitCustomAction,
		},
	},
}

func splitTotalAction(ctx *cli.Context) error {
	amount, err := mathutil.ParseAmount(ctx.String("amount"))
	if err != nil {
		return err
	}
	return submitSplit(ctx, domain.SplitRequest{
		Type:          domain.SplitTotal,
		TokenID:       ctx.String("tokenid"),
		TotalAmount:   amount,
		NumberOfCoins: ctx.Int("coins"),
	})
}

func splitPerCoinAction(ctx *cli.Context) error {
	amount, err := mathutil.ParseAmount(ctx.String("amount_per_coin"))
	if err != nil {
		return err
	}
	return submitSplit(ctx, domain.SplitRequest{
		Type:          domain.SplitPerCoin,
		TokenID:       ctx.String("tokenid"),
		AmountPerCoin: amount,
		NumberOfCoins: ctx.Int("coins"),
	})
}

func splitCustomAction(ctx *cli.Context) error {
	recipients := make([]domain.SplitRecipient, 0, len(ctx.StringSlice("to")))
	for _, entry := range ctx.StringSlice("to") {
		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid recipient %q, expected <address>:<amount>", entry)
		}
		amount, err := mathutil.ParseAmount(parts[1])
		if err != nil {
			return err
		}
		recipients = append(recipients, domain.SplitRecipient{
			Address: parts[0],
			Amount:  amount,
		})
	}

	return submitSplit(ctx, domain.SplitRequest{
		Type:        domain.SplitCustom,
		TokenID:     ctx.String("tokenid"),
		Splits:      recipients,
		SplitAmount: ctx.Int("split"),
	})
}

func submitSplit(ctx *cli.Context, req domain.SplitRequest) error {
	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := svc.plannerSvc.Split(context.Background(), req)
	if err != nil {
		return err
	}

	return resolveAndPrint(svc, req.TokenID, res, ctx.Bool("no_wait"))
}
