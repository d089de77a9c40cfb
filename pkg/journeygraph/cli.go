package journeygraph

import (
	"github.com/lagosnav/lagosnav/pkg/config"
	"github.com/lagosnav/lagosnav/pkg/database"
	"github.com/lagosnav/lagosnav/pkg/dataimporter"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/urfave/cli/v2"
)

func RegisterCLI(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "journeygraph",
		Usage: "Export the bus network into a Neo4j graph",
		Subcommands: []*cli.Command{
			{
				Name:  "export",
				Usage: "Replace the graph with the current stops & legs",
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

					driver, err := neo4j.NewDriverWithContext(
						cfg.Neo4j.URI,
						neo4j.BasicAuth(cfg.Neo4j.Username, cfg.Neo4j.Password, ""))
					if err != nil {
						return err
					}
					defer driver.Close(c.Context)

					if err := driver.VerifyConnectivity(c.Context); err != nil {
						return err
					}

					return Export(c.Context, driver, cfg.Neo4j.Database, dataset)
				},
			},
		},
	}
}
