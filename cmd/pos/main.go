package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/noah-isme/pos-billing/internal/app"
	"github.com/noah-isme/pos-billing/internal/config"
	"github.com/noah-isme/pos-billing/internal/console"
	"github.com/noah-isme/pos-billing/internal/obs"
)

func main() {
	cliApp := &cli.App{
		Name:  "pos",
		Usage: "single-session point-of-sale billing",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "load environment variables from `FILE` before reading config",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override OBS_LOG_LEVEL",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "override OBS_LOG_FORMAT (json or console)",
			},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if envFile := c.String("env-file"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if format := c.String("log-format"); format != "" {
		cfg.LogFormat = format
	}

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("component", "pos").Logger()

	deps, err := app.Build(cfg, logger)
	if err != nil {
		return fmt.Errorf("build dependencies: %w", err)
	}
	logger.Debug().Int("items", len(deps.Catalog.Items())).Msg("catalog seeded")

	loop := &console.Loop{Deps: deps, In: os.Stdin, Out: os.Stdout}
	return loop.Run()
}
