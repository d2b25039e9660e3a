package command

import (
	"context"
	"fmt"

	"github.com/aykah/storefront/internal/cart/domain"
)

// ClearCartCommand represents the command to empty the cart
type ClearCartCommand struct {
	SessionKey string
}

// ClearCartHandler empties the cart unconditionally
type ClearCartHandler struct {
	carts domain.CartRepository
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(carts domain.CartRepository) *ClearCartHandler {
	return &ClearCartHandler{carts: carts}
}

// Handle executes the clear cart command
func (h *ClearCartHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if cmd.SessionKey == "" {
		return fmt.Errorf("session key is required")
	}

	if err := h.carts.Delete(ctx, cmd.SessionKey); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
