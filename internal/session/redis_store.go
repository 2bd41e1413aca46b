package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "widget:session:"

// RedisStore backs the session store with Redis so multiple API instances
// share issued tokens.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store over an existing Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	if client == nil {
		panic("session: redis client required")
	}
	return &RedisStore{client: client}
}

// Save records a session id with Redis-managed expiry.
func (s *RedisStore) Save(ctx context.Context, id string, ttl time.Duration) error {
	if err := s.client.Set(ctx, redisKeyPrefix+id, "1", ttl).Err(); err != nil {
		return fmt.Errorf("session: save %s: %w", id, err)
	}
	return nil
}

// Active reports whether the id is still present.
func (s *RedisStore) Active(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, redisKeyPrefix+id).Result()
	if err != nil {
		return false, fmt.Errorf("session: check %s: %w", id, err)
	}
	return n > 0, nil
}

// Revoke deletes the session id.
func (s *RedisStore) Revoke(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("session: revoke %s: %w", id, err)
	}
	return nil
}
