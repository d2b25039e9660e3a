package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const tokenKeyPrefix = "storefront:session:token:"

// RedisTokenStore persists one bearer token string per session key so
// sessions survive a client reload. Tokens expire with the store TTL even
// if logout never happens.
type RedisTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTokenStore creates a token store on the given Redis client
func NewRedisTokenStore(client *redis.Client, ttl time.Duration) *RedisTokenStore {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &RedisTokenStore{client: client, ttl: ttl}
}

// Save writes the token for key
func (s *RedisTokenStore) Save(ctx context.Context, key, token string) error {
	if err := s.client.Set(ctx, tokenKeyPrefix+key, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	return nil
}

// Load reads the token for key, empty when absent
func (s *RedisTokenStore) Load(ctx context.Context, key string) (string, error) {
	token, err := s.client.Get(ctx, tokenKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	return token, nil
}

// Delete removes the token for key
func (s *RedisTokenStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, tokenKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
