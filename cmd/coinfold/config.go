package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var (
	nodeAddrFlag = cli.StringFlag{
		Name:  "node_addr",
		Usage: "wallet node command endpoint",
		Value: "http://127.0.0.1:9005",
	}

	nodeWsAddrFlag = cli.StringFlag{
		Name:  "node_ws_addr",
		Usage: "wallet node push-event websocket endpoint",
		Value: "ws://127.0.0.1:9004/ws",
	}
)

var configCmd = cli.Command{
	Name:   "config",
	Usage:  "Print local configuration of the coinfold CLI",
	Action: configAction,
	Subcommands: []*cli.Command{
		{
			Name:   "set",
			Usage:  "set a <key> <value> in the local state",
			Action: configSetAction,
		},
		{
			Name:   "init",
			Usage:  "initialize the local state with flags",
			Action: configInitAction,
			Flags: []cli.Flag{
				&nodeAddrFlag,
				&nodeWsAddrFlag,
			},
		},
	},
}

func configAction(ctx *cli.Context) error {
	state, err := getState()
	if err != nil {
		return err
	}

	for key, value := range state {
		fmt.Println(key + ": " + value)
	}

	return nil
}

func configInitAction(c *cli.Context) error {
	return setState(map[string]string{
		"node_addr":    c.String("node_addr"),
		"node_ws_addr": c.String("node_ws_addr"),
	})
}

func configSetAction(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("key and value are missing")
	}

	key := c.Args().Get(0)
	value := c.Args().Get(1)

	if err := setState(map[string]string{key: value}); err != nil {
		return err
	}

	fmt.Printf("%s %s has been set\n", key, value)
	return nil
}
