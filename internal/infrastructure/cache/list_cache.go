package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ListCache is the injected query-cache capability for filtered list
// results. Entries are staleness-bounded by TTL; a stale read is an
// accepted trade-off, a cache outage is not an error the caller sees.
type ListCache interface {
	// Get unmarshals the cached value for key into dest and reports
	// whether the key was found.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

type redisListCache struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewListCache(client *redis.Client, log *logrus.Logger) ListCache {
	return &redisListCache{
		client: client,
		log:    log,
	}
}

// Get treats every infrastructure failure as a miss. The caller falls
// back to the persistence layer.
func (c *redisListCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Cache get failed for key %s: %+v", key, err)
		}
		return false, nil
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		c.log.Warnf("Cache payload corrupt for key %s: %+v", key, err)
		return false, nil
	}

	return true, nil
}

// Set failures are logged and swallowed; the service keeps serving from
// the database.
func (c *redisListCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		c.log.Warnf("Cache marshal failed for key %s: %+v", key, err)
		return nil
	}

	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		c.log.Warnf("Cache set failed for key %s: %+v", key, err)
	}
	return nil
}

func (c *redisListCache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Warnf("Cache invalidate failed for key %s: %+v", key, err)
	}
	return nil
}

// Fetch consults the cache before running fetch, and populates the cache
// on a miss. fetch runs exactly once per miss; its error is returned
// untouched and nothing is cached on failure.
func Fetch[T any](ctx context.Context, c ListCache, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	var cached T
	if found, _ := c.Get(ctx, key, &cached); found {
		return cached, nil
	}

	value, err := fetch()
	if err != nil {
		return value, err
	}

	_ = c.Set(ctx, key, value, ttl)
	return value, nil
}
