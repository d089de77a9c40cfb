package global

import (
	"context"

	"github.com/lagosnav/lagosnav/pkg/config"
	"github.com/lagosnav/lagosnav/pkg/dataaggregator"
	"github.com/lagosnav/lagosnav/pkg/dataaggregator/source/journeyplanner"
	"github.com/lagosnav/lagosnav/pkg/dataaggregator/source/stopfinder"
	trafficsource "github.com/lagosnav/lagosnav/pkg/dataaggregator/source/traffic"
	"github.com/lagosnav/lagosnav/pkg/database"
	"github.com/lagosnav/lagosnav/pkg/dataimporter"
	"github.com/lagosnav/lagosnav/pkg/redis_client"
	"github.com/lagosnav/lagosnav/pkg/routeplanner"
	"github.com/lagosnav/lagosnav/pkg/traffic"

	catalogs "github.com/lagosnav/lagosnav/pkg/stopfinder"
)

// Setup loads the dataset, builds the planner and registers every data source
func Setup(ctx context.Context, cfg *config.Config) (*routeplanner.Planner, error) {
	if cfg.Dataset.Format == dataimporter.DatasetFormatMongoDB {
		if err := database.Connect(cfg.MongoDB); err != nil {
			return nil, err
		}
	}

	dataset, err := dataimporter.Load(ctx, cfg.Dataset)
	if err != nil {
		return nil, err
	}

	catalog, err := catalogs.NewCatalog(dataset.Stops, catalogs.CatalogOptions{
		StrictNames: cfg.Dataset.StrictNames,
	})
	if err != nil {
		return nil, err
	}

	mode, err := routeplanner.ParseEnumerationMode(cfg.Planner.Enumeration)
	if err != nil {
		return nil, err
	}

	selector, err := routeplanner.NewSelector(cfg.Planner.ScoreExpression)
	if err != nil {
		return nil, err
	}

	if err := redis_client.Connect(cfg.Redis); err != nil {
		return nil, err
	}

	trafficProvider, err := traffic.NewFromConfig(cfg.Traffic, redis_client.Client)
	if err != nil {
		return nil, err
	}

	planner := routeplanner.NewPlanner(catalog, dataset.Legs, trafficProvider, mode, selector)

	Register(cfg, planner)

	return planner, nil
}

// Register replaces the global aggregator sources with ones backed by planner
func Register(cfg *config.Config, planner *routeplanner.Planner) {
	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}

	dataaggregator.GlobalAggregator.RegisterSource(stopfinder.Source{
		Catalog:     planner.Catalog,
		SearchLimit: cfg.Planner.SearchLimit,
	})

	dataaggregator.GlobalAggregator.RegisterSource(journeyplanner.Source{
		Planner:           planner,
		MatrixConcurrency: cfg.Planner.MatrixConcurrency,
	})

	dataaggregator.GlobalAggregator.RegisterSource(trafficsource.Source{
		Provider: planner.Traffic,
	})
}
