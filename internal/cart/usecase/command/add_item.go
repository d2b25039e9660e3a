package command

import (
	"context"
	"fmt"

	"github.com/aykah/storefront/internal/cart/domain"
	catalog "github.com/aykah/storefront/internal/catalog/domain"
)

// AddItemCommand represents the command to add a product to the cart
type AddItemCommand struct {
	SessionKey string
	ProductID  uint
}

// AddItemHandler handles the add-to-cart intent. Adding a product already
// in the cart increments its quantity, so the outcome is the same however
// the intents interleave.
type AddItemHandler struct {
	carts   domain.CartRepository
	catalog catalog.CatalogGateway
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(carts domain.CartRepository, gateway catalog.CatalogGateway) *AddItemHandler {
	return &AddItemHandler{carts: carts, catalog: gateway}
}

// Handle executes the add item command
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) (*domain.Cart, error) {
	if cmd.SessionKey == "" {
		return nil, fmt.Errorf("session key is required")
	}
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}

	product, err := h.catalog.GetProduct(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	cart, err := h.carts.Get(ctx, cmd.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	cart.AddItem(*product)

	if err := h.carts.Save(ctx, cmd.SessionKey, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}
