package api

import (
	"github.com/lagosnav/lagosnav/pkg/config"
	"github.com/lagosnav/lagosnav/pkg/dataaggregator/global"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the journey planning web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target for the web server, defaults to server.listen",
					},
				},
				Action: func(c *cli.Context) error {
					if _, err := global.Setup(c.Context, cfg); err != nil {
						return err
					}

					listen := c.String("listen")
					if listen == "" {
						listen = cfg.Server.Listen
					}
					log.Info().Str("listen", listen).Msg("Starting web API")

					return SetupServer(listen)
				},
			},
		},
	}
}
