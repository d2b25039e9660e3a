package command

import (
	"context"
	"fmt"

	"github.com/aykah/storefront/internal/cart/domain"
)

// UpdateQuantityCommand represents the command to set an item's quantity
type UpdateQuantityCommand struct {
	SessionKey string
	ProductID  uint
	Quantity   int
}

// UpdateQuantityHandler handles quantity changes. A quantity below 1 is a
// removal by policy, the input is normalized rather than rejected.
type UpdateQuantityHandler struct {
	carts domain.CartRepository
}

// NewUpdateQuantityHandler creates a new update quantity handler
func NewUpdateQuantityHandler(carts domain.CartRepository) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{carts: carts}
}

// Handle executes the update quantity command
func (h *UpdateQuantityHandler) Handle(ctx context.Context, cmd UpdateQuantityCommand) (*domain.Cart, error) {
	if cmd.SessionKey == "" {
		return nil, fmt.Errorf("session key is required")
	}

	cart, err := h.carts.Get(ctx, cmd.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	cart.SetQuantity(cmd.ProductID, cmd.Quantity)

	if err := h.carts.Save(ctx, cmd.SessionKey, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}
