// internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/comparisonmarket/cm-backend/internal/config"
)

// SearchCache holds short-lived search responses keyed by the normalized
// query string. A nil *SearchCache is valid and disables caching.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSearchCache connects to Redis when an address is configured. Returns
// (nil, nil) when caching is disabled.
func NewSearchCache(cfg config.RedisConfig) (*SearchCache, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &SearchCache{
		client: client,
		ttl:    time.Duration(cfg.CacheTTL) * time.Second,
	}, nil
}

func (c *SearchCache) Close() {
	if c != nil && c.client != nil {
		c.client.Close()
	}
}

// Get unmarshals a cached value into dest. Returns false on miss, Redis
// failure, or a stale payload that no longer unmarshals.
func (c *SearchCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}

	payload, err := c.client.Get(ctx, "search:"+key).Result()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).Warn("Search cache read failed")
		}
		return false
	}

	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		logrus.WithError(err).Warn("Search cache payload invalid, ignoring")
		return false
	}
	return true
}

// Set stores a value best-effort; failures are logged and swallowed so the
// request path never depends on Redis availability.
func (c *SearchCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, "search:"+key, payload, c.ttl).Err(); err != nil {
		logrus.WithError(err).Warn("Search cache write failed")
	}
}
