package repository

import (
	"context"
	"sync"

	"github.com/aykah/storefront/internal/cart/domain"
)

// MemoryCartRepository holds carts in process memory, keyed by session key
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

// NewMemoryCartRepository creates an empty cart repository
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{
		carts: make(map[string]*domain.Cart),
	}
}

// Get returns the cart for key. Absent keys yield a fresh empty cart so
// callers never deal with nil.
func (r *MemoryCartRepository) Get(_ context.Context, key string) (*domain.Cart, error) {
	r.mu.RLock()
	cart, ok := r.carts[key]
	r.mu.RUnlock()
	if !ok {
		return domain.NewCart(), nil
	}
	return domain.FromItems(cart.Items()), nil
}

// Save stores the cart for key
func (r *MemoryCartRepository) Save(_ context.Context, key string, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[key] = domain.FromItems(cart.Items())
	return nil
}

// Delete removes the cart for key; absent keys are a no-op
func (r *MemoryCartRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, key)
	return nil
}
