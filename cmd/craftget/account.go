package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func accountCmd() *cli.Command {
	return &cli.Command{
		Name:      "account",
		Usage:     "set the offline display name",
		ArgsUsage: "<name>",
		Action:    accountAction,
	}
}

func accountAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: craftget account <name>")
	}

	cfg, path, err := loadConfig(c)
	if err != nil {
		return err
	}
	cfg.UserName = c.Args().Get(0)
	if err := cfg.Save(path); err != nil {
		return err
	}
	fmt.Printf("Set account name to %s\n", cfg.UserName)
	return nil
}
