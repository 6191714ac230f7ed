package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const geoCacheTTL = 24 * time.Hour

// GeoCache caches remote location lookups. Entries expire so stale provider
// data does not live forever. Cache failures are logged and swallowed: the
// resolver just falls through to the network.
type GeoCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewGeoCache(client *redis.Client, logger zerolog.Logger) *GeoCache {
	return &GeoCache{client: client, ttl: geoCacheTTL, logger: logger}
}

func (g *GeoCache) Get(ctx context.Context, key string, dest any) bool {
	raw, err := g.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			g.logger.Warn().Err(err).Str("key", key).Msg("geo cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		g.logger.Warn().Err(err).Str("key", key).Msg("geo cache entry corrupt")
		return false
	}
	return true
}

func (g *GeoCache) Set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		g.logger.Warn().Err(err).Str("key", key).Msg("geo cache encode failed")
		return
	}
	if err := g.client.Set(ctx, key, raw, g.ttl).Err(); err != nil {
		g.logger.Warn().Err(err).Str("key", key).Msg("geo cache write failed")
	}
}
