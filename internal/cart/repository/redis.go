package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aykah/storefront/internal/cart/domain"
)

const cartKeyPrefix = "storefront:cart:"

// RedisCartRepository persists carts as JSON snapshots so they survive a
// restart. Durability here is a product decision, not a correctness
// requirement; the snapshot format tolerates corrupt entries on read.
type RedisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

type cartSnapshot struct {
	Items []domain.Item `json:"items"`
}

// NewRedisCartRepository creates a cart repository on the given Redis client
func NewRedisCartRepository(client *redis.Client, ttl time.Duration) *RedisCartRepository {
	if ttl == 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &RedisCartRepository{client: client, ttl: ttl}
}

// Get loads the cart for key, empty when absent
func (r *RedisCartRepository) Get(ctx context.Context, key string) (*domain.Cart, error) {
	raw, err := r.client.Get(ctx, cartKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var snapshot cartSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		// An unreadable snapshot starts the shopper over rather than
		// wedging every cart operation
		return domain.NewCart(), nil
	}
	return domain.FromItems(snapshot.Items), nil
}

// Save stores the cart snapshot for key
func (r *RedisCartRepository) Save(ctx context.Context, key string, cart *domain.Cart) error {
	raw, err := json.Marshal(cartSnapshot{Items: cart.Items()})
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := r.client.Set(ctx, cartKeyPrefix+key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// Delete removes the cart for key
func (r *RedisCartRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, cartKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
