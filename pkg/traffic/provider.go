package traffic

import (
	"context"
	"time"

	"github.com/lagosnav/lagosnav/pkg/config"
	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Provider supplies a traffic sample for a journey and never fails, implementations fall back to an estimate
type Provider interface {
	GetTrafficData(ctx context.Context, origin string, destination string) ctdf.TrafficSample
}

// NewFromConfig builds the configured provider, wrapped in the Redis cache when a client is given
func NewFromConfig(cfg config.TrafficConfig, redisClient *redis.Client) (Provider, error) {
	synthetic := NewSynthetic(cfg.Seed)

	var provider Provider = synthetic

	if cfg.Provider == "live" {
		if cfg.APIKey == "" {
			log.Warn().Msg("Live traffic requested without an API key, using synthetic estimates")
		} else {
			timeout, err := cfg.TimeoutDuration()
			if err != nil {
				return nil, err
			}

			provider = NewLive(cfg.APIKey, timeout, synthetic)
			log.Info().Str("timeout", timeout.String()).Msg("Using live traffic provider")
		}
	}

	if redisClient != nil {
		expiry, err := cfg.CacheExpiryDuration()
		if err != nil {
			return nil, err
		}

		provider = NewCached(provider, redisClient, expiry)
		log.Info().Str("expiry", expiry.String()).Msg("Caching traffic samples in Redis")
	}

	return provider, nil
}

func estimatedAt(now time.Time, level ctdf.TrafficLevel, delay int) ctdf.TrafficSample {
	return ctdf.TrafficSample{
		Level:       level,
		Delay:       delay,
		LastUpdated: now,
		Estimated:   true,
	}
}
