// README: Redis cache for catalog snapshots.
package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const snapshotKey = "catalog:snapshot"

type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(redis *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: redis, ttl: ttl}
}

// Get loads the cached catalog. The second return reports a hit.
func (c *Cache) Get(ctx context.Context) (Catalog, bool, error) {
	raw, err := c.redis.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return Catalog{}, false, nil
	}
	if err != nil {
		return Catalog{}, false, err
	}
	var cat Catalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		return Catalog{}, false, nil
	}
	return cat, true, nil
}

func (c *Cache) Set(ctx context.Context, cat Catalog) error {
	raw, err := json.Marshal(cat)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, snapshotKey, raw, c.ttl).Err()
}

func (c *Cache) Invalidate(ctx context.Context) error {
	return c.redis.Del(ctx, snapshotKey).Err()
}
