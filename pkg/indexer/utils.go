package indexer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/lagosnav/lagosnav/pkg/elastic_client"
	"github.com/rs/zerolog/log"
)

type catIndex struct {
	Index string `json:"index"`
}

func staleIndexes(indexes []catIndex, current string) []string {
	var stale []string

	for _, index := range indexes {
		if index.Index != current {
			stale = append(stale, index.Index)
		}
	}

	return stale
}

func deleteOldIndexes(ctx context.Context, indexWildcard string, indexName string) error {
	catReq := esapi.CatIndicesRequest{
		Index:  []string{indexWildcard},
		Format: "json",
	}

	resp, err := catReq.Do(ctx, elastic_client.Client)
	if err != nil {
		return fmt.Errorf("list indexes: %w", err)
	}
	defer resp.Body.Close()

	var indexes []catIndex
	if err := json.NewDecoder(resp.Body).Decode(&indexes); err != nil {
		return fmt.Errorf("decode index list: %w", err)
	}

	for _, index := range staleIndexes(indexes, indexName) {
		deleteReq := esapi.IndicesDeleteRequest{
			Index: []string{index},
		}

		deleteResp, err := deleteReq.Do(ctx, elastic_client.Client)
		if err != nil {
			log.Error().Err(err).Str("index", index).Msg("Failed to delete old index")
			continue
		}
		deleteResp.Body.Close()

		log.Info().Str("index", index).Msg("Delete old index")
	}

	return nil
}
