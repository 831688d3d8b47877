package volcanoes

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const countriesCacheKey = "volcanoes:countries:v1"

// CountryCache stores the country list between requests.
type CountryCache interface {
	Get(ctx context.Context) ([]string, bool, error)
	Set(ctx context.Context, countries []string) error
}

// RedisCountryCache keeps the country list in Redis for ttl.
type RedisCountryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCountryCache builds a Redis-backed CountryCache.
func NewRedisCountryCache(client *redis.Client, ttl time.Duration) *RedisCountryCache {
	return &RedisCountryCache{client: client, ttl: ttl}
}

// Get returns the cached list; ok is false on a miss.
func (c *RedisCountryCache) Get(ctx context.Context) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, countriesCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var countries []string
	if err := json.Unmarshal(raw, &countries); err != nil {
		return nil, false, err
	}
	return countries, true, nil
}

// Set stores countries.
func (c *RedisCountryCache) Set(ctx context.Context, countries []string) error {
	raw, err := json.Marshal(countries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, countriesCacheKey, raw, c.ttl).Err()
}
