package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/aykah/storefront/internal/catalog/domain"
	"github.com/aykah/storefront/internal/wishlist/domain"
)

func setupRedisWishlistRepo(t *testing.T) (*RedisWishlistRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisWishlistRepository(client, time.Hour), mr
}

func TestRedisWishlistRoundTrip(t *testing.T) {
	repo, _ := setupRedisWishlistRepo(t)
	ctx := context.Background()

	w := domain.NewWishlist()
	w.Add(catalog.Product{ID: 4, Title: "Gold Ring", Price: 168})
	w.Add(catalog.Product{ID: 5, Title: "External Drive", Price: 64})

	require.NoError(t, repo.Save(ctx, "session-1", w))

	loaded, err := repo.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())
	assert.True(t, loaded.Contains(4))

	products := loaded.Products()
	require.Len(t, products, 2)
	assert.Equal(t, uint(4), products[0].ID)
	assert.Equal(t, uint(5), products[1].ID)
}

func TestRedisWishlistGetAbsentReturnsEmpty(t *testing.T) {
	repo, _ := setupRedisWishlistRepo(t)

	w, err := repo.Get(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Zero(t, w.Len())
}

func TestRedisWishlistCorruptSnapshotStartsOver(t *testing.T) {
	repo, mr := setupRedisWishlistRepo(t)

	mr.Set(wishlistKeyPrefix+"session-1", "][")

	w, err := repo.Get(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Zero(t, w.Len())
}

func TestRedisWishlistDelete(t *testing.T) {
	repo, _ := setupRedisWishlistRepo(t)
	ctx := context.Background()

	w := domain.NewWishlist()
	w.Add(catalog.Product{ID: 4, Price: 168})
	require.NoError(t, repo.Save(ctx, "session-1", w))

	require.NoError(t, repo.Delete(ctx, "session-1"))

	loaded, err := repo.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Zero(t, loaded.Len())
}
