package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
)

var tokenIDFlag = cli.StringFlag{
	Name:  "tokenid",
	Usage: "token to operate on",
	Value: domain.BaseTokenID,
}

var balanceCmd = cli.Command{
	Name:   "balance",
	Usage:  "show the confirmed/sendable/unconfirmed balance of a token",
	Flags:  []cli.Flag{&tokenIDFlag},
	Action: balanceAction,
}

var listCoinsCmd = cli.Command{
	Name:   "listcoins",
	Usage:  "list the sendable coins of a token",
	Flags:  []cli.Flag{&tokenIDFlag},
	Action: listCoinsAction,
}

var disabledCoinsCmd = cli.Command{
	Name: "disabledcoins",
	Usage: "list the coins withheld from operations because they account " +
		"for the confirmed-minus-sendable balance gap",
	Flags:  []cli.Flag{&tokenIDFlag},
	Action: disabledCoinsAction,
}

func balanceAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	snapshot, err := svc.ledgerSvc.Snapshot(
		context.Background(), ctx.String("tokenid"),
	)
	if err != nil {
		return err
	}

	printRespJSON(map[string]interface{}{
		"tokenid":        snapshot.TokenID,
		"confirmed":      snapshot.Balance.Confirmed.String(),
		"sendable":       snapshot.Balance.Sendable.String(),
		"unconfirmed":    snapshot.Balance.Unconfirmed.String(),
		"coins":          len(snapshot.Coins),
		"disabledCoins":  len(snapshot.Disabled),
		"canConsolidate": snapshot.CanConsolidate(),
	})
	return nil
}

func listCoinsAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	snapshot, err := svc.ledgerSvc.Snapshot(
		context.Background(), ctx.String("tokenid"),
	)
	if err != nil {
		return err
	}

	type coinView struct {
		CoinID   string `json:"coinid"`
		Amount   string `json:"amount"`
		Address  string `json:"address"`
		Created  uint64 `json:"created"`
		Disabled bool   `json:"disabled"`
	}
	list := make([]coinView, 0, len(snapshot.Coins))
	for _, coin := range snapshot.Coins {
		list = append(list, coinView{
			CoinID:   coin.CoinID,
			Amount:   coin.EffectiveAmount().String(),
			Address:  coin.Address,
			Created:  coin.Created,
			Disabled: snapshot.IsDisabled(coin.CoinID),
		})
	}
	printRespJSON(list)
	return nil
}

func disabledCoinsAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices()
	if err != nil {
		return err
	}
	defer cleanup()

	snapshot, err := svc.ledgerSvc.Snapshot(
		context.Background(), ctx.String("tokenid"),
	)
	if err != nil {
		return err
	}

	if len(snapshot.Disabled) == 0 {
		fmt.Println("no disabled coins")
		return nil
	}
	for coinID := range snapshot.Disabled {
		fmt.Println(coinID)
	}
	return nil
}
