// Package cache implements the insight cache on top of redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/budget-service/internal/application/adapter"
)

const (
	keyPrefix = "insights"
	scanBatch = 100
)

// redisInsightCache implements adapter.InsightCache.
type redisInsightCache struct {
	client redis.UniversalClient
}

// NewRedisInsightCache creates an insight cache backed by client.
func NewRedisInsightCache(client redis.UniversalClient) adapter.InsightCache {
	return &redisInsightCache{
		client: client,
	}
}

// entryKey escapes userID so its segment holds neither the ':' separator nor
// any SCAN glob metacharacter.
func entryKey(userID, key string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, url.QueryEscape(userID), key)
}

// Get loads a cached entry into dest.
func (c *redisInsightCache) Get(ctx context.Context, userID, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, entryKey(userID, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode cache entry: %w", err)
	}
	return true, nil
}

// Set stores value as JSON with the given TTL.
func (c *redisInsightCache) Set(ctx context.Context, userID, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	if err := c.client.Set(ctx, entryKey(userID, key), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// InvalidateUser deletes every entry of userID.
func (c *redisInsightCache) InvalidateUser(ctx context.Context, userID string) error {
	pattern := entryKey(userID, "*")

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cache entries: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete cache entries: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// noopInsightCache never stores anything.
type noopInsightCache struct{}

// NewNoopInsightCache returns a cache that always misses, used when caching is disabled.
func NewNoopInsightCache() adapter.InsightCache {
	return noopInsightCache{}
}

func (noopInsightCache) Get(context.Context, string, string, any) (bool, error) {
	return false, nil
}

func (noopInsightCache) Set(context.Context, string, string, any, time.Duration) error {
	return nil
}

func (noopInsightCache) InvalidateUser(context.Context, string) error {
	return nil
}
