package dataimporter

import (
	"context"

	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/lagosnav/lagosnav/pkg/database"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StopWriteModels upserts each stop keyed on its id
func StopWriteModels(stops []*ctdf.Stop) []mongo.WriteModel {
	var operations []mongo.WriteModel

	for _, stop := range stops {
		updateModel := mongo.NewUpdateOneModel()
		updateModel.SetFilter(bson.M{"id": stop.ID})
		updateModel.SetUpdate(bson.M{"$set": stop})
		updateModel.SetUpsert(true)

		operations = append(operations, updateModel)
	}

	return operations
}

// LegWriteModels upserts each leg keyed on its position in the dataset, so parallel legs on one line stay
// distinct, and removes legs left over from a longer previous import
func LegWriteModels(legs []*ctdf.Leg) []mongo.WriteModel {
	var operations []mongo.WriteModel

	for sequence, leg := range legs {
		updateModel := mongo.NewUpdateOneModel()
		updateModel.SetFilter(bson.M{"sequence": sequence})
		updateModel.SetUpdate(bson.M{"$set": bson.M{
			"from":      leg.From,
			"to":        leg.To,
			"fare":      leg.Fare,
			"time":      leg.Time,
			"busnumber": leg.Line,
			"bustype":   leg.Category,
			"distance":  leg.Distance,
			"sequence":  sequence,
		}})
		updateModel.SetUpsert(true)

		operations = append(operations, updateModel)
	}

	staleModel := mongo.NewDeleteManyModel()
	staleModel.SetFilter(bson.M{"sequence": bson.M{"$gte": len(legs)}})
	operations = append(operations, staleModel)

	return operations
}

// Import writes the dataset into MongoDB, requires database.Connect first
func Import(ctx context.Context, dataset *ctdf.Dataset) error {
	log.Info().Msg("Importing stops into MongoDB")
	if err := bulkWrite(ctx, database.StopsCollection, StopWriteModels(dataset.Stops)); err != nil {
		return err
	}

	log.Info().Msg("Importing legs into MongoDB")
	if err := bulkWrite(ctx, database.LegsCollection, LegWriteModels(dataset.Legs)); err != nil {
		return err
	}

	return nil
}

func bulkWrite(ctx context.Context, collectionName string, operations []mongo.WriteModel) error {
	if len(operations) == 0 {
		return nil
	}

	result, err := database.GetCollection(collectionName).BulkWrite(ctx, operations, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return err
	}

	log.Info().
		Str("collection", collectionName).
		Int64("inserts", result.UpsertedCount).
		Int64("updates", result.ModifiedCount).
		Int64("deletes", result.DeletedCount).
		Msg(" - Written to MongoDB")

	return nil
}
