package indexer

import (
	"github.com/lagosnav/lagosnav/pkg/config"
	"github.com/lagosnav/lagosnav/pkg/database"
	"github.com/lagosnav/lagosnav/pkg/dataimporter"
	"github.com/lagosnav/lagosnav/pkg/elastic_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "indexer",
		Usage: "Indexes data into Elasticsearch",
		Subcommands: []*cli.Command{
			{
				Name:  "stops",
				Usage: "do an index of the Stops",
				Action: func(c *cli.Context) error {
					if cfg.Dataset.Format == dataimporter.DatasetFormatMongoDB {
						if err := database.Connect(cfg.MongoDB); err != nil {
							return err
						}
						defer database.Disconnect()
					}

					dataset, err := dataimporter.Load(c.Context, cfg.Dataset)
					if err != nil {
						return err
					}

					if err := elastic_client.Connect(cfg.Elasticsearch, true); err != nil {
						return err
					}

					return IndexStops(c.Context, dataset.Stops)
				},
			},
		},
	}
}
