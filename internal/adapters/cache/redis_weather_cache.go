package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ecoroute-service/internal/domain"
	"ecoroute-service/internal/platform/obs"
	"ecoroute-service/internal/ports"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultWeatherTTL = 10 * time.Minute

// RedisWeatherCache wraps a WeatherProvider with a short-lived Redis cache.
// Samples are keyed on a 0.01 degree grid (about 1 km). Redis failures fall
// through to the upstream provider.
type RedisWeatherCache struct {
	next ports.WeatherProvider
	rdb  *redis.Client
	ttl  time.Duration
	log  *zap.Logger
}

func NewRedisWeatherCache(next ports.WeatherProvider, rdb *redis.Client, ttl time.Duration, log *zap.Logger) *RedisWeatherCache {
	if ttl <= 0 {
		ttl = DefaultWeatherTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisWeatherCache{next: next, rdb: rdb, ttl: ttl, log: log.Named("weather_cache")}
}

func weatherKey(at domain.Coordinates) string {
	return fmt.Sprintf("weather:%.2f:%.2f", at.Lat, at.Lon)
}

func (c *RedisWeatherCache) Current(ctx context.Context, at domain.Coordinates) (domain.WeatherSample, error) {
	key := weatherKey(at)
	reqID := zap.String("req_id", obs.RequestID(ctx))

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var w domain.WeatherSample
		if jerr := json.Unmarshal(raw, &w); jerr == nil {
			return w, nil
		}
		c.log.Warn("discarding corrupt weather cache entry", reqID, zap.String("key", key))
	case errors.Is(err, redis.Nil):
	default:
		c.log.Warn("weather cache read failed", reqID, zap.Error(err))
	}

	w, err := c.next.Current(ctx, at)
	if err != nil {
		return domain.WeatherSample{}, err
	}

	payload, err := json.Marshal(w)
	if err != nil {
		return w, nil
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("weather cache write failed", reqID, zap.Error(err))
	}
	return w, nil
}
