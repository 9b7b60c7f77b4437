package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/craftget/craftget/pkg/fetch"
	"github.com/craftget/craftget/pkg/mcconfig"
)

const appVersion = "0.1.0"

func main() {
	app := &cli.App{
		Name:  "craftget",
		Usage: "install game versions through a mirror",
		Before: func(c *cli.Context) error {
			configureLogging(c.Bool("verbose"))
			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: mcconfig.DefaultPath,
				Usage: "config file path",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 30 * time.Minute,
				Usage: "operation timeout",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "verbose output",
			},
		},
		Commands: []*cli.Command{
			initCmd(),
			listCmd(),
			accountCmd(),
			buildCmd(),
			setMirrorCmd(),
			verifyCmd(),
			{
				Name:  "version",
				Usage: "print version",
				Action: func(c *cli.Context) error {
					fmt.Println(appVersion)
					return nil
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func configureLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}),
	))
}

func loadConfig(
	c *cli.Context,
) (*mcconfig.RuntimeConfig, string, error) {
	path := c.String("config")
	cfg, err := mcconfig.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf(
				"no config at %s "+
					"(run 'craftget init' first)",
				path,
			)
		}
		return nil, "", err
	}
	return cfg, path, nil
}

func newClient() *fetch.Client {
	cl := fetch.New()
	cl.UserAgent = "craftget/" + appVersion
	return cl
}

func contextWithTimeout(
	c *cli.Context,
) (context.Context, context.CancelFunc) {
	return context.WithTimeout(
		context.Background(),
		c.Duration("timeout"),
	)
}
