package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores entries in redis, for deployments running several
// server instances against one shared dictionary.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to the redis instance at addr and verifies the
// connection with a ping before returning.
func NewRedisCache(ctx context.Context, addr string) (Cache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return &RedisCache{client: client}, nil
}

// Get retrieves the value stored under key.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores data under key. A ttl of zero stores the entry without
// expiration.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes the entry stored under key, if any.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close releases the redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
