package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/craftget/craftget/pkg/install"
)

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "install the configured game version",
		ArgsUsage: "[version]",
		Action:    buildAction,
	}
}

func buildAction(c *cli.Context) error {
	if c.NArg() > 1 {
		return fmt.Errorf("usage: craftget build [version]")
	}

	cfg, path, err := loadConfig(c)
	if err != nil {
		return err
	}

	if v := c.Args().Get(0); v != "" {
		cfg.GameVersion = v
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Printf("Set version to %s\n", v)
	}

	ctx, cancel := contextWithTimeout(c)
	defer cancel()

	return install.Run(ctx, newClient(), cfg)
}
