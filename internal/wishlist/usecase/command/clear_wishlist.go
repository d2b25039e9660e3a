package command

import (
	"context"
	"fmt"

	"github.com/aykah/storefront/internal/wishlist/domain"
)

// ClearWishlistCommand represents the command to clear the wishlist
type ClearWishlistCommand struct {
	SessionKey string
}

// ClearWishlistHandler handles clearing every saved product
type ClearWishlistHandler struct {
	wishlists domain.WishlistRepository
}

// NewClearWishlistHandler creates a new clear wishlist handler
func NewClearWishlistHandler(wishlists domain.WishlistRepository) *ClearWishlistHandler {
	return &ClearWishlistHandler{wishlists: wishlists}
}

// Handle executes the clear wishlist command
func (h *ClearWishlistHandler) Handle(ctx context.Context, cmd ClearWishlistCommand) error {
	if cmd.SessionKey == "" {
		return fmt.Errorf("session key is required")
	}
	if err := h.wishlists.Delete(ctx, cmd.SessionKey); err != nil {
		return fmt.Errorf("failed to clear wishlist: %w", err)
	}
	return nil
}
