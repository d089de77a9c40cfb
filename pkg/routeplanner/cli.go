package routeplanner

import (
	"context"
	"fmt"

	"github.com/kr/pretty"
	"github.com/lagosnav/lagosnav/pkg/config"
	"github.com/lagosnav/lagosnav/pkg/util"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

// SetupFunc builds the planner from configuration, injected by main
type SetupFunc func(ctx context.Context) (*Planner, error)

func RegisterCLI(cfg *config.Config, setup SetupFunc) *cli.Command {
	return &cli.Command{
		Name:  "planner",
		Usage: "Plan routes and search stops from the command line",
		Subcommands: []*cli.Command{
			{
				Name:  "plan",
				Usage: "Plan the best route between two stops",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "origin", Required: true},
					&cli.StringFlag{Name: "destination", Required: true},
					&cli.BoolFlag{Name: "fastest", Usage: "Prefer the shortest journey time"},
					&cli.BoolFlag{Name: "cheapest", Usage: "Prefer the lowest fare"},
				},
				Action: func(c *cli.Context) error {
					planner, err := setup(c.Context)
					if err != nil {
						return err
					}

					result, err := planner.Plan(c.Context, c.String("origin"), c.String("destination"), Preferences{
						Fastest:  c.Bool("fastest"),
						Cheapest: c.Bool("cheapest"),
					})
					if err != nil {
						return err
					}

					pretty.Println(result)

					return nil
				},
			},
			{
				Name:  "search",
				Usage: "Fuzzy search the stop catalog",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "query", Required: true},
					&cli.IntFlag{Name: "limit", Usage: "Maximum results, defaults to planner.search_limit"},
				},
				Action: func(c *cli.Context) error {
					planner, err := setup(c.Context)
					if err != nil {
						return err
					}

					limit := cfg.Planner.SearchLimit
					if c.IsSet("limit") {
						limit = c.Int("limit")
					}

					pretty.Println(planner.Catalog.Search(c.String("query"), limit))

					return nil
				},
			},
			{
				Name:  "matrix",
				Usage: "Plan every ordered pair between a list of stops",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "stops", Required: true, Usage: "Comma separated stop names"},
					&cli.IntFlag{Name: "concurrency", Usage: "Plans in flight, defaults to planner.matrix_concurrency"},
					&cli.BoolFlag{Name: "fastest"},
					&cli.BoolFlag{Name: "cheapest"},
				},
				Action: func(c *cli.Context) error {
					planner, err := setup(c.Context)
					if err != nil {
						return err
					}

					concurrency := cfg.Planner.MatrixConcurrency
					if c.IsSet("concurrency") {
						concurrency = c.Int("concurrency")
					}

					pairs := PairsBetween(util.SplitList(c.String("stops"), ","))
					results := planner.PlanMatrix(c.Context, pairs, Preferences{
						Fastest:  c.Bool("fastest"),
						Cheapest: c.Bool("cheapest"),
					}, concurrency)

					for _, result := range results {
						if result.Err != nil {
							log.Warn().Err(result.Err).Str("origin", result.Origin).Str("destination", result.Destination).Msg("No plan")
							continue
						}

						fmt.Printf("%s -> %s: %d min, %.0f naira, %d legs, %s traffic\n",
							result.Origin, result.Destination,
							result.Result.TotalTime, result.Result.TotalFare, len(result.Result.Steps), result.Result.Traffic)
					}

					return nil
				},
			},
		},
	}
}
