package query

import (
	"context"
	"fmt"

	"github.com/aykah/storefront/internal/wishlist/domain"
)

// GetWishlistQuery represents the query to fetch the session wishlist
type GetWishlistQuery struct {
	SessionKey string
}

// GetWishlistHandler handles wishlist retrieval
type GetWishlistHandler struct {
	wishlists domain.WishlistRepository
}

// NewGetWishlistHandler creates a new get wishlist handler
func NewGetWishlistHandler(wishlists domain.WishlistRepository) *GetWishlistHandler {
	return &GetWishlistHandler{wishlists: wishlists}
}

// Handle executes the get wishlist query
func (h *GetWishlistHandler) Handle(ctx context.Context, q GetWishlistQuery) (*domain.Wishlist, error) {
	if q.SessionKey == "" {
		return nil, fmt.Errorf("session key is required")
	}
	wishlist, err := h.wishlists.Get(ctx, q.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}
	return wishlist, nil
}
