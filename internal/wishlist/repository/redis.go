package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	catalog "github.com/aykah/storefront/internal/catalog/domain"
	"github.com/aykah/storefront/internal/wishlist/domain"
)

const wishlistKeyPrefix = "storefront:wishlist:"

// RedisWishlistRepository persists wishlists as JSON snapshots
type RedisWishlistRepository struct {
	client *redis.Client
	ttl    time.Duration
}

type wishlistSnapshot struct {
	Products []catalog.Product `json:"products"`
}

// NewRedisWishlistRepository creates a wishlist repository on the given
// Redis client
func NewRedisWishlistRepository(client *redis.Client, ttl time.Duration) *RedisWishlistRepository {
	if ttl == 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &RedisWishlistRepository{client: client, ttl: ttl}
}

// Get loads the wishlist for key, empty when absent
func (r *RedisWishlistRepository) Get(ctx context.Context, key string) (*domain.Wishlist, error) {
	raw, err := r.client.Get(ctx, wishlistKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.NewWishlist(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}

	var snapshot wishlistSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return domain.NewWishlist(), nil
	}
	return domain.FromProducts(snapshot.Products), nil
}

// Save stores the wishlist snapshot for key
func (r *RedisWishlistRepository) Save(ctx context.Context, key string, wishlist *domain.Wishlist) error {
	raw, err := json.Marshal(wishlistSnapshot{Products: wishlist.Products()})
	if err != nil {
		return fmt.Errorf("failed to encode wishlist: %w", err)
	}
	if err := r.client.Set(ctx, wishlistKeyPrefix+key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to persist wishlist: %w", err)
	}
	return nil
}

// Delete removes the wishlist for key
func (r *RedisWishlistRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, wishlistKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete wishlist: %w", err)
	}
	return nil
}
