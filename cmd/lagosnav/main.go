package main

import (
	"context"
	"os"
	"time"

	"github.com/lagosnav/lagosnav/pkg/api"
	"github.com/lagosnav/lagosnav/pkg/config"
	"github.com/lagosnav/lagosnav/pkg/dataaggregator/global"
	"github.com/lagosnav/lagosnav/pkg/dataimporter"
	"github.com/lagosnav/lagosnav/pkg/indexer"
	"github.com/lagosnav/lagosnav/pkg/journeygraph"
	"github.com/lagosnav/lagosnav/pkg/routeplanner"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("LAGOSNAV_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("LAGOSNAV_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	cfg := config.Default()

	setupPlanner := func(ctx context.Context) (*routeplanner.Planner, error) {
		return global.Setup(ctx, cfg)
	}

	app := &cli.App{
		Name:        "lagosnav",
		Description: "Bus journey planning and stop search for Lagos",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   config.DefaultPath,
				Usage:   "path of the YAML config file",
				EnvVars: []string{"LAGOSNAV_CONFIG"},
			},
		},
		Before: func(c *cli.Context) error {
			loaded, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			*cfg = *loaded

			return nil
		},

		Commands: []*cli.Command{
			api.RegisterCLI(cfg),
			routeplanner.RegisterCLI(cfg, setupPlanner),
			dataimporter.RegisterCLI(cfg),
			indexer.RegisterCLI(cfg),
			journeygraph.RegisterCLI(cfg),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
