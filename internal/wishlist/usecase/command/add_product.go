package command

import (
	"context"
	"fmt"

	catalog "github.com/aykah/storefront/internal/catalog/domain"
	"github.com/aykah/storefront/internal/wishlist/domain"
)

// AddProductCommand represents the command to save a product
type AddProductCommand struct {
	SessionKey string
	ProductID  uint
}

// AddProductHandler handles the save-to-wishlist intent. Saving a product
// twice yields exactly one entry.
type AddProductHandler struct {
	wishlists domain.WishlistRepository
	catalog   catalog.CatalogGateway
}

// NewAddProductHandler creates a new add product handler
func NewAddProductHandler(wishlists domain.WishlistRepository, gateway catalog.CatalogGateway) *AddProductHandler {
	return &AddProductHandler{wishlists: wishlists, catalog: gateway}
}

// Handle executes the add product command
func (h *AddProductHandler) Handle(ctx context.Context, cmd AddProductCommand) (*domain.Wishlist, error) {
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

	wishlist, err := h.wishlists.Get(ctx, cmd.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}

	wishlist.Add(*product)

	if err := h.wishlists.Save(ctx, cmd.SessionKey, wishlist); err != nil {
		return nil, fmt.Errorf("failed to save wishlist: %w", err)
	}
	return wishlist, nil
}
