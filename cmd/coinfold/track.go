package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var coinIDFlag = cli.StringFlag{
	Name:     "coinid",
	Usage:    "id of the coin",
	Required: true,
}

var trackCmd = cli.Command{
	Name:   "track",
	Usage:  "track a coin so it counts towards balances again",
	Flags:  []cli.Flag{&coinIDFlag},
	Action: trackAction,
}

var untrackCmd = cli.Command{
	Name:   "untrack",
	Usage:  "untrack a coin to hide it from balance calculations",
	Flags:  []cli.Flag{&coinIDFlag},
	Action: untrackAction,
}

func trackAction(ctx *cli.Context) error {
	return toggleTracking(ctx, true)
}

func untrackAction(ctx *cli.Context) error {
	return toggleTracking(ctx, false)
}

func toggleTracking(ctx *cli.Context, track bool) error {
	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	coinID := ctx.String("coinid")
	var res interface {
		IsPending() bool
	}
	if track {
		res, err = svc.plannerSvc.TrackCoin(context.Background(), coinID)
	} else {
		res, err = svc.plannerSvc.UntrackCoin(context.Background(), coinID)
	}
	if err != nil {
		return err
	}

	if res.IsPending() {
		fmt.Println("command is pending approval in the node's pending surface")
		return nil
	}
	if track {
		fmt.Println("coin tracked")
	} else {
		fmt.Println("coin untracked")
	}
	return nil
}
