package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/craftget/craftget/pkg/mirror"
)

func setMirrorCmd() *cli.Command {
	return &cli.Command{
		Name:      "set-mirror",
		Usage:     "select the download mirror",
		ArgsUsage: "<official|bmclapi>",
		Action:    setMirrorAction,
	}
}

func setMirrorAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf(
			"usage: craftget set-mirror <official|bmclapi>",
		)
	}

	cfg, path, err := loadConfig(c)
	if err != nil {
		return err
	}

	name := c.Args().Get(0)
	switch name {
	case "official":
		cfg.Mirror = mirror.Official()
	case "bmclapi":
		cfg.Mirror = mirror.BMCLAPI()
	default:
		return fmt.Errorf(
			"unknown mirror %q (want official or bmclapi)",
			name,
		)
	}

	if err := cfg.Save(path); err != nil {
		return err
	}
	fmt.Printf("Set %s mirror\n", name)
	return nil
}
