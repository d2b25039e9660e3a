package query

import (
	"context"
	"fmt"

	"github.com/aykah/storefront/internal/cart/domain"
)

// GetCartQuery represents the query for the current cart
type GetCartQuery struct {
	SessionKey string
}

// GetCartHandler handles cart retrieval
type GetCartHandler struct {
	carts domain.CartRepository
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(carts domain.CartRepository) *GetCartHandler {
	return &GetCartHandler{carts: carts}
}

// Handle executes the get cart query. An unknown session key yields an
// empty cart.
func (h *GetCartHandler) Handle(ctx context.Context, q GetCartQuery) (*domain.Cart, error) {
	if q.SessionKey == "" {
		return nil, fmt.Errorf("session key is required")
	}

	cart, err := h.carts.Get(ctx, q.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return cart, nil
}
