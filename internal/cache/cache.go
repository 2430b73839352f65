package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is a thin JSON layer over redis. A nil *Cache is valid and
// means caching is disabled, so call sites never branch on config.
type Cache struct {
	client *redis.Client
}

func New(redisURL string) *Cache {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, caching disabled: %v", err)
		return nil
	}

	return &Cache{client: redis.NewClient(opts)}
}

func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache del: %v", err)
	}
}

// Key builders for the equipment listing endpoints.

func MyEquipmentsKey(farmerID uint) string {
	return fmt.Sprintf("equipments:my:%d", farmerID)
}

func OtherEquipmentsKey(farmerID uint) string {
	return fmt.Sprintf("equipments:others:%d", farmerID)
}
