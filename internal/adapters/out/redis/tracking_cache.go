// Package redis provides the Redis-backed tracking cache adapter.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const trackingKeyPrefix = "tracking:"

// TrackingCache implements ports.TrackingCache on top of a Redis client.
// Keys are namespaced under "tracking:" so the instance can be shared.
type TrackingCache struct {
	client *redis.Client
}

// NewTrackingCache creates a tracking cache from a Redis URL.
// The redisURL should be in the format: redis://[:password@]host[:port][/database]
func NewTrackingCache(redisURL string) (*TrackingCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	return &TrackingCache{client: redis.NewClient(opts)}, nil
}

// Get retrieves the cached payload for a tracking number.
// A missing key is a miss, not an error.
func (c *TrackingCache) Get(ctx context.Context, trackingNumber string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, trackingKeyPrefix+trackingNumber).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get tracking entry %s: %w", trackingNumber, err)
	}
	return val, true, nil
}

// Set stores the payload for a tracking number with the given TTL.
func (c *TrackingCache) Set(ctx context.Context, trackingNumber string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, trackingKeyPrefix+trackingNumber, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set tracking entry %s: %w", trackingNumber, err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (c *TrackingCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *TrackingCache) Close() error {
	return c.client.Close()
}
