package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/craftget/craftget/pkg/mcconfig"
)

func initCmd() *cli.Command {
	return &cli.Command{
		Name:   "init",
		Usage:  "write a default config to the game directory",
		Action: initAction,
	}
}

func initAction(c *cli.Context) error {
	path := c.String("config")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf(
			"%s already exists, refusing to overwrite", path,
		)
	}

	cfg, err := mcconfig.Default()
	if err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}
	fmt.Println("Initialized empty game directory")
	return nil
}
