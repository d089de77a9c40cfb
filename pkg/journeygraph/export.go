package journeygraph

import (
	"context"

	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog/log"
)

const (
	clearGraphQuery = "MATCH (s:Stop) DETACH DELETE s"

	createStopQuery = `
		UNWIND $stops AS stop
		MERGE (s:Stop {id: stop.id})
		SET s.name = stop.name, s.aliases = stop.aliases, s.location = point({latitude: stop.lat, longitude: stop.lng})
	`

	createLegQuery = `
		UNWIND $legs AS leg
		MATCH (o:Stop {name: leg.from})
		MATCH (d:Stop {name: leg.to})
		CREATE (o)-[:LEG {line: leg.line, category: leg.category, fare: leg.fare, time: leg.time, distance: leg.distance}]->(d)
	`
)

func stopParameters(stops []*ctdf.Stop) []map[string]any {
	parameters := make([]map[string]any, 0, len(stops))

	for _, stop := range stops {
		aliases := stop.Aliases
		if aliases == nil {
			aliases = []string{}
		}

		parameters = append(parameters, map[string]any{
			"id":      stop.ID,
			"name":    stop.Name,
			"aliases": aliases,
			"lat":     stop.Lat,
			"lng":     stop.Lng,
		})
	}

	return parameters
}

func legParameters(legs []*ctdf.Leg) []map[string]any {
	parameters := make([]map[string]any, 0, len(legs))

	for _, leg := range legs {
		parameters = append(parameters, map[string]any{
			"from":     leg.From,
			"to":       leg.To,
			"line":     leg.Line,
			"category": string(leg.Category),
			"fare":     leg.Fare,
			"time":     leg.Time,
			"distance": leg.Distance,
		})
	}

	return parameters
}

// Export replaces the stop graph in Neo4j with the dataset, one Stop node per stop and one LEG relationship per leg
func Export(ctx context.Context, driver neo4j.DriverWithContext, databaseName string, dataset *ctdf.Dataset) error {
	session := driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: databaseName})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		if _, err := tx.Run(ctx, clearGraphQuery, nil); err != nil {
			return nil, err
		}

		if _, err := tx.Run(ctx, createStopQuery, map[string]any{"stops": stopParameters(dataset.Stops)}); err != nil {
			return nil, err
		}

		if _, err := tx.Run(ctx, createLegQuery, map[string]any{"legs": legParameters(dataset.Legs)}); err != nil {
			return nil, err
		}

		return nil, nil
	})
	if err != nil {
		return err
	}

	log.Info().Int("stops", len(dataset.Stops)).Int("legs", len(dataset.Legs)).Msg("Exported network to Neo4j")

	return nil
}
