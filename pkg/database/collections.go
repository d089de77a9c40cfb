package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	StopsCollection = "stops"
	LegsCollection  = "legs"
)

func createIndexes() {
	createStopsIndexes()
	createLegsIndexes()
}

func createStopsIndexes() {
	stopsCollection := GetCollection(StopsCollection)
	stopsIndex := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "name", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "aliases", Value: 1}},
		},
	}

	_, err := stopsCollection.Indexes().CreateMany(context.Background(), stopsIndex, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createLegsIndexes() {
	legsCollection := GetCollection(LegsCollection)
	legsIndex := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sequence", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "from", Value: 1}, {Key: "to", Value: 1}, {Key: "busnumber", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "to", Value: 1}},
		},
	}

	_, err := legsCollection.Indexes().CreateMany(context.Background(), legsIndex, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
