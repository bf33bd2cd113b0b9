package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SessionCache implements ports.SessionCache over Redis. Tokens live in a
// shared store rather than per-process memory so an invalidation issued by
// one instance is immediately visible to every other.
type SessionCache struct {
	client *goredis.Client
	prefix string
}

// NewSessionCache creates a Redis-backed vendor session cache.
func NewSessionCache(client *goredis.Client) *SessionCache {
	return &SessionCache{
		client: client,
		prefix: "session:",
	}
}

// Get retrieves a cached session token. Returns "" when absent or expired.
func (c *SessionCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("redis session get: %w", err)
	}
	return val, nil
}

// Put stores a session token with TTL.
func (c *SessionCache) Put(ctx context.Context, key, token string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, token, ttl).Err(); err != nil {
		return fmt.Errorf("redis session put: %w", err)
	}
	return nil
}

// Invalidate removes a session token for the tenant+scope.
func (c *SessionCache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis session invalidate: %w", err)
	}
	return nil
}
