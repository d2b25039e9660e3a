package command

import (
	"context"
	"fmt"

	"github.com/aykah/storefront/internal/wishlist/domain"
)

// RemoveProductCommand represents the command to remove a saved product
type RemoveProductCommand struct {
	SessionKey string
	ProductID  uint
}

// RemoveProductHandler handles removal of a saved product. Removing a
// product that is not saved leaves the wishlist unchanged.
type RemoveProductHandler struct {
	wishlists domain.WishlistRepository
}

// NewRemoveProductHandler creates a new remove product handler
func NewRemoveProductHandler(wishlists domain.WishlistRepository) *RemoveProductHandler {
	return &RemoveProductHandler{wishlists: wishlists}
}

// Handle executes the remove product command
func (h *RemoveProductHandler) Handle(ctx context.Context, cmd RemoveProductCommand) (*domain.Wishlist, error) {
	if cmd.SessionKey == "" {
		return nil, fmt.Errorf("session key is required")
	}

	wishlist, err := h.wishlists.Get(ctx, cmd.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}

	wishlist.Remove(cmd.ProductID)

	if err := h.wishlists.Save(ctx, cmd.SessionKey, wishlist); err != nil {
		return nil, fmt.Errorf("failed to save wishlist: %w", err)
	}
	return wishlist, nil
}
