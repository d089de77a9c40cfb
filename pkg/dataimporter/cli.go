package dataimporter

import (
	"context"
	"time"

	"github.com/lagosnav/lagosnav/pkg/config"
	"github.com/lagosnav/lagosnav/pkg/database"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Load the stops & legs dataset and store it in MongoDB",
		Subcommands: []*cli.Command{
			{
				Name:  "import",
				Usage: "Upsert the dataset files into MongoDB",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Format of the dataset files (json or csv), defaults to dataset.format",
					},
					&cli.StringFlag{
						Name:  "stops",
						Usage: "Path of the stops file, defaults to dataset.stops_path",
					},
					&cli.StringFlag{
						Name:  "legs",
						Usage: "Path of the legs file, defaults to dataset.legs_path",
					},
				},
				Action: func(c *cli.Context) error {
					datasetConfig := cfg.Dataset
					if c.IsSet("format") {
						datasetConfig.Format = c.String("format")
					}
					if c.IsSet("stops") {
						datasetConfig.StopsPath = c.String("stops")
					}
					if c.IsSet("legs") {
						datasetConfig.LegsPath = c.String("legs")
					}

					if datasetConfig.Format == DatasetFormatMongoDB {
						return UnsupportedFormatError{Format: datasetConfig.Format}
					}

					startTime := time.Now()

					dataset, err := Load(c.Context, datasetConfig)
					if err != nil {
						return err
					}

					if err := database.Connect(cfg.MongoDB); err != nil {
						return err
					}
					defer database.Disconnect()

					ctx, cancel := context.WithTimeout(c.Context, 5*time.Minute)
					defer cancel()

					if err := Import(ctx, dataset); err != nil {
						return err
					}

					log.Info().Msgf("Import took %s", time.Since(startTime).String())

					return nil
				},
			},
		},
	}
}
