package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/craftget/craftget/pkg/manifest"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "list versions known to the mirror",
		ArgsUsage: "[all|release|snapshot]",
		Action:    listAction,
	}
}

func listAction(c *cli.Context) error {
	vt, err := manifest.ParseVersionType(c.Args().Get(0))
	if err != nil {
		return err
	}

	cfg, _, err := loadConfig(c)
	if err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout(c)
	defer cancel()

	m, err := manifest.Fetch(
		ctx, newClient(), cfg.Mirror.VersionManifest,
	)
	if err != nil {
		return err
	}

	for _, id := range m.List(vt) {
		fmt.Println(id)
	}
	return nil
}
