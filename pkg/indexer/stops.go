package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/lagosnav/lagosnav/pkg/elastic_client"
	"github.com/rs/zerolog/log"
)

const StopsIndexPrefix = "lagosnav-stops"

const stopIndexMapping = `{
	"settings": {
		"number_of_shards": 1,
		"number_of_replicas": 1
	},
	"mappings": {
		"properties": {
			"id": {
				"type": "integer"
			},
			"name": {
				"type": "text",
				"fields": {
					"keyword": {
						"type": "keyword",
						"ignore_above": 256
					},
					"search_as_you_type": {
						"type": "search_as_you_type"
					}
				}
			},
			"aliases": {
				"type": "text",
				"fields": {
					"keyword": {
						"type": "keyword",
						"ignore_above": 256
					},
					"search_as_you_type": {
						"type": "search_as_you_type"
					}
				}
			},
			"location": {
				"type": "geo_point"
			}
		}
	}
}`

type geoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type StopDocument struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases"`
	Location geoPoint `json:"location"`
}

func NewStopDocument(stop *ctdf.Stop) StopDocument {
	aliases := stop.Aliases
	if aliases == nil {
		aliases = []string{}
	}

	return StopDocument{
		ID:      stop.ID,
		Name:    stop.Name,
		Aliases: aliases,
		Location: geoPoint{
			Lat: stop.Lat,
			Lon: stop.Lng,
		},
	}
}

// IndexStops writes the catalog into a fresh timestamped index and drops the previous ones
func IndexStops(ctx context.Context, stops []*ctdf.Stop) error {
	indexName := fmt.Sprintf("%s-%d", StopsIndexPrefix, time.Now().Unix())

	if err := createStopIndex(ctx, indexName); err != nil {
		return err
	}

	for _, stop := range stops {
		jsonStop, err := json.Marshal(NewStopDocument(stop))
		if err != nil {
			return err
		}

		elastic_client.IndexRequest(ctx, indexName, strconv.Itoa(stop.ID), bytes.NewReader(jsonStop))
	}

	log.Info().Int("stops", len(stops)).Msg("Sent all index requests to queue")

	stats, err := elastic_client.WaitUntilQueueEmpty(ctx)
	if err != nil {
		return err
	}
	if stats.NumFailed > 0 {
		return fmt.Errorf("%d of %d stops failed to index", stats.NumFailed, stats.NumAdded)
	}

	log.Info().Uint64("indexed", stats.NumIndexed).Str("index", indexName).Msg("Index queue emptied")

	return deleteOldIndexes(ctx, StopsIndexPrefix+"-*", indexName)
}

func createStopIndex(ctx context.Context, indexName string) error {
	indexReq := esapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(stopIndexMapping),
	}

	resp, err := indexReq.Do(ctx, elastic_client.Client)
	if err != nil {
		return fmt.Errorf("create index %s: %w", indexName, err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index %s: %s", indexName, resp.String())
	}

	log.Info().Str("index", indexName).Msg("Created index")

	return nil
}
