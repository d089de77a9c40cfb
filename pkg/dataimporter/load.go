package dataimporter

import (
	"context"
	"fmt"
	"os"

	"github.com/lagosnav/lagosnav/pkg/config"
	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/lagosnav/lagosnav/pkg/database"
	"github.com/lagosnav/lagosnav/pkg/dataimporter/formats"
	"github.com/lagosnav/lagosnav/pkg/dataimporter/formats/csvfile"
	"github.com/lagosnav/lagosnav/pkg/dataimporter/formats/jsonfile"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DatasetFormatJSON    = "json"
	DatasetFormatCSV     = "csv"
	DatasetFormatMongoDB = "mongodb"
)

type UnsupportedFormatError struct {
	Format string
}

func (u UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported dataset format %q", u.Format)
}

// Load reads the configured dataset and checks every leg holds its invariants
func Load(ctx context.Context, cfg config.DatasetConfig) (*ctdf.Dataset, error) {
	var dataset *ctdf.Dataset
	var err error

	switch cfg.Format {
	case DatasetFormatJSON:
		dataset, err = LoadFiles(&jsonfile.JSONFile{}, cfg.StopsPath, cfg.LegsPath)
	case DatasetFormatCSV:
		dataset, err = LoadFiles(&csvfile.CSVFile{}, cfg.StopsPath, cfg.LegsPath)
	case DatasetFormatMongoDB:
		dataset, err = LoadMongoDB(ctx)
	default:
		return nil, UnsupportedFormatError{Format: cfg.Format}
	}
	if err != nil {
		return nil, err
	}

	if err := dataset.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}

	if unknown := dataset.UnknownLegStops(); len(unknown) > 0 {
		log.Warn().Strs("stops", unknown).Msg("Legs reference stops missing from the catalog")
	}

	for _, leg := range dataset.ShortLegs() {
		log.Warn().
			Str("from", leg.From).
			Str("to", leg.To).
			Str("line", leg.Line).
			Float64("distance", leg.Distance).
			Msg("Leg distance is shorter than the straight line between its stops")
	}

	log.Info().
		Str("format", cfg.Format).
		Int("stops", len(dataset.Stops)).
		Int("legs", len(dataset.Legs)).
		Msg("Loaded dataset")

	return dataset, nil
}

func LoadFiles(format formats.Format, stopsPath string, legsPath string) (*ctdf.Dataset, error) {
	stopsFile, err := os.Open(stopsPath)
	if err != nil {
		return nil, err
	}
	defer stopsFile.Close()

	if err := format.ParseStops(stopsFile); err != nil {
		return nil, fmt.Errorf("%s: %w", stopsPath, err)
	}

	legsFile, err := os.Open(legsPath)
	if err != nil {
		return nil, err
	}
	defer legsFile.Close()

	if err := format.ParseLegs(legsFile); err != nil {
		return nil, fmt.Errorf("%s: %w", legsPath, err)
	}

	return format.ToCTDF(), nil
}

// LoadMongoDB reads the imported collections, requires database.Connect first
func LoadMongoDB(ctx context.Context) (*ctdf.Dataset, error) {
	dataset := &ctdf.Dataset{}

	stopsCursor, err := database.GetCollection(database.StopsCollection).Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	if err := stopsCursor.All(ctx, &dataset.Stops); err != nil {
		return nil, err
	}

	legsCursor, err := database.GetCollection(database.LegsCollection).Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "sequence", Value: 1}}))
	if err != nil {
		return nil, err
	}
	if err := legsCursor.All(ctx, &dataset.Legs); err != nil {
		return nil, err
	}

	return dataset, nil
}
