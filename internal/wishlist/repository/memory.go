package repository

import (
	"context"
	"sync"

	"github.com/aykah/storefront/internal/wishlist/domain"
)

// MemoryWishlistRepository holds wishlists in process memory, keyed by
// session key
type MemoryWishlistRepository struct {
	mu        sync.RWMutex
	wishlists map[string]*domain.Wishlist
}

// NewMemoryWishlistRepository creates an empty wishlist repository
func NewMemoryWishlistRepository() *MemoryWishlistRepository {
	return &MemoryWishlistRepository{
		wishlists: make(map[string]*domain.Wishlist),
	}
}

// Get returns the wishlist for key, empty when absent
func (r *MemoryWishlistRepository) Get(_ context.Context, key string) (*domain.Wishlist, error) {
	r.mu.RLock()
	wishlist, ok := r.wishlists[key]
	r.mu.RUnlock()
	if !ok {
		return domain.NewWishlist(), nil
	}
	return domain.FromProducts(wishlist.Products()), nil
}

// Save stores the wishlist for key
func (r *MemoryWishlistRepository) Save(_ context.Context, key string, wishlist *domain.Wishlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wishlists[key] = domain.FromProducts(wishlist.Products())
	return nil
}

// Delete removes the wishlist for key; absent keys are a no-op
func (r *MemoryWishlistRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.wishlists, key)
	return nil
}
