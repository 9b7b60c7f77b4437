package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/craftget/craftget/pkg/assets"
)

func verifyCmd() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "re-hash the local object store",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name: "delete",
				Usage: "delete corrupt objects so the " +
					"next build refetches them",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "hash workers (default: CPUs)",
			},
		},
		Action: verifyAction,
	}
}

func verifyAction(c *cli.Context) error {
	cfg, _, err := loadConfig(c)
	if err != nil {
		return err
	}

	report, err := assets.Scan(
		cfg.GameDir, c.Int("workers"),
	)
	if err != nil {
		return err
	}

	fmt.Printf("Checked %d objects\n", report.Checked)
	if len(report.Corrupt) == 0 {
		fmt.Println("Object store is clean")
		return nil
	}

	for _, path := range report.Corrupt {
		fmt.Printf("  corrupt: %s\n", path)
	}
	if !c.Bool("delete") {
		return fmt.Errorf(
			"%d corrupt objects (rerun with --delete)",
			len(report.Corrupt),
		)
	}

	for _, path := range report.Corrupt {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf(
				"remove %s: %w", path, err,
			)
		}
	}
	fmt.Printf(
		"Deleted %d corrupt objects; "+
			"run 'craftget build' to refetch\n",
		len(report.Corrupt),
	)
	return nil
}
