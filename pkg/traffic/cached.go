package traffic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/lagosnav/lagosnav/pkg/util"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Cached keeps samples in Redis so repeated plans between the same stops agree for a while
type Cached struct {
	Provider Provider
	Cache    *cache.Cache[string]
}

func NewCached(provider Provider, redisClient *redis.Client, expiry time.Duration) *Cached {
	redisStore := redisstore.NewRedis(redisClient, store.WithExpiration(expiry))

	return &Cached{
		Provider: provider,
		Cache:    cache.New[string](redisStore),
	}
}

func CacheKey(origin string, destination string) string {
	return fmt.Sprintf("traffic:%s:%s", util.NormaliseName(origin), util.NormaliseName(destination))
}

func (c *Cached) GetTrafficData(ctx context.Context, origin string, destination string) ctdf.TrafficSample {
	key := CacheKey(origin, destination)

	if cachedValue, err := c.Cache.Get(ctx, key); err == nil && cachedValue != "" {
		var sample ctdf.TrafficSample
		if err := json.Unmarshal([]byte(cachedValue), &sample); err == nil {
			return sample
		}
		log.Error().Str("key", key).Msg("Failed to decode cached traffic sample")
	}

	sample := c.Provider.GetTrafficData(ctx, origin, destination)

	sampleJSON, err := json.Marshal(sample)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode traffic sample")
		return sample
	}

	if err := c.Cache.Set(ctx, key, string(sampleJSON)); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to cache traffic sample")
	}

	return sample
}
