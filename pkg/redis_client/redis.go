package redis_client

import (
	"context"
	"time"

	"github.com/lagosnav/lagosnav/pkg/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Client *redis.Client

// Connect opens the shared client, an empty address leaves Client nil
func Connect(cfg config.RedisConfig) error {
	if cfg.Address == "" {
		log.Info().Msg("No Redis address configured, traffic samples will not be cached")
		return nil
	}

	options := &redis.Options{
		Addr: cfg.Address,
		DB:   cfg.Database,
	}
	if cfg.Password != "" {
		options.Password = cfg.Password
	}

	client := redis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return err
	}

	Client = client
	log.Info().Str("address", cfg.Address).Int("database", cfg.Database).Msg("Connected to Redis")

	return nil
}
