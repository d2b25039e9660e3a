package command

import (
	"context"
	"fmt"

	"github.com/aykah/storefront/internal/cart/domain"
)

// RemoveItemCommand represents the command to remove a product from the cart
type RemoveItemCommand struct {
	SessionKey string
	ProductID  uint
}

// RemoveItemHandler handles item removal. Removing an absent product is a
// no-op, not an error.
type RemoveItemHandler struct {
	carts domain.CartRepository
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(carts domain.CartRepository) *RemoveItemHandler {
	return &RemoveItemHandler{carts: carts}
}

// Handle executes the remove item command
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) (*domain.Cart, error) {
	if cmd.SessionKey == "" {
		return nil, fmt.Errorf("session key is required")
	}

	cart, err := h.carts.Get(ctx, cmd.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	cart.RemoveItem(cmd.ProductID)

	if err := h.carts.Save(ctx, cmd.SessionKey, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}
