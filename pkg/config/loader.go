package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lagosnav/lagosnav/pkg/util"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	iso8601 "github.com/senseyeio/duration"
)

const EnvironmentPrefix = "LAGOSNAV_"

// Load reads the YAML file at path on top of the defaults, applies LAGOSNAV_* overrides and validates the result.
// A missing file at the default path is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		log.Debug().Str("path", path).Msg("Loaded config file")
	case errors.Is(err, os.ErrNotExist) && path == DefaultPath:
		log.Debug().Str("path", path).Msg("No config file, using defaults")
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.applyEnvironment(util.GetPrefixedEnvironmentVariables(EnvironmentPrefix)); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if _, err := c.Traffic.TimeoutDuration(); err != nil {
		return fmt.Errorf("invalid traffic.timeout: %w", err)
	}
	if _, err := c.Traffic.CacheExpiryDuration(); err != nil {
		return fmt.Errorf("invalid traffic.cache_expiry: %w", err)
	}

	return nil
}

func (c *Config) applyEnvironment(env map[string]string) error {
	stringOverrides := map[string]*string{
		"LISTEN":                 &c.Server.Listen,
		"DATASET_FORMAT":         &c.Dataset.Format,
		"DATASET_STOPS_PATH":     &c.Dataset.StopsPath,
		"DATASET_LEGS_PATH":      &c.Dataset.LegsPath,
		"PLANNER_ENUMERATION":    &c.Planner.Enumeration,
		"PLANNER_SCORE":          &c.Planner.ScoreExpression,
		"TRAFFIC_PROVIDER":       &c.Traffic.Provider,
		"TRAFFIC_API_KEY":        &c.Traffic.APIKey,
		"TRAFFIC_TIMEOUT":        &c.Traffic.Timeout,
		"TRAFFIC_CACHE_EXPIRY":   &c.Traffic.CacheExpiry,
		"MONGODB_CONNECTION":     &c.MongoDB.Connection,
		"MONGODB_DATABASE":       &c.MongoDB.Database,
		"REDIS_ADDRESS":          &c.Redis.Address,
		"REDIS_PASSWORD":         &c.Redis.Password,
		"ELASTICSEARCH_ADDRESS":  &c.Elasticsearch.Address,
		"ELASTICSEARCH_USERNAME": &c.Elasticsearch.Username,
		"ELASTICSEARCH_PASSWORD": &c.Elasticsearch.Password,
		"NEO4J_URI":              &c.Neo4j.URI,
		"NEO4J_USERNAME":         &c.Neo4j.Username,
		"NEO4J_PASSWORD":         &c.Neo4j.Password,
		"NEO4J_DATABASE":         &c.Neo4j.Database,
	}
	for key, target := range stringOverrides {
		if value, exists := env[key]; exists {
			*target = value
		}
	}

	intOverrides := map[string]*int{
		"PLANNER_SEARCH_LIMIT":       &c.Planner.SearchLimit,
		"PLANNER_MATRIX_CONCURRENCY": &c.Planner.MatrixConcurrency,
		"REDIS_DATABASE":             &c.Redis.Database,
	}
	for key, target := range intOverrides {
		if value, exists := env[key]; exists {
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("%s%s should be an integer: %w", EnvironmentPrefix, key, err)
			}
			*target = n
		}
	}

	if value, exists := env["TRAFFIC_SEED"]; exists {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%sTRAFFIC_SEED should be an integer: %w", EnvironmentPrefix, err)
		}
		c.Traffic.Seed = n
	}

	if value, exists := env["DATASET_STRICT_NAMES"]; exists {
		strict, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%sDATASET_STRICT_NAMES should be a boolean: %w", EnvironmentPrefix, err)
		}
		c.Dataset.StrictNames = strict
	}

	return nil
}

func (t TrafficConfig) TimeoutDuration() (time.Duration, error) {
	return parseDuration(t.Timeout)
}

func (t TrafficConfig) CacheExpiryDuration() (time.Duration, error) {
	return parseDuration(t.CacheExpiry)
}

func parseDuration(value string) (time.Duration, error) {
	isoDuration, err := iso8601.ParseISO8601(value)
	if err != nil {
		return 0, err
	}

	// Durations with calendar components need an anchor to resolve against
	anchor := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

	return isoDuration.Shift(anchor).Sub(anchor), nil
}
