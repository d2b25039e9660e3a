package query

import (
	"context"
	"fmt"

	"github.com/aykah/storefront/internal/catalog/domain"
)

// GetProductQuery represents the query to get a single product
type GetProductQuery struct {
	ID uint
}

// GetProductHandler handles single product lookups
type GetProductHandler struct {
	gateway domain.CatalogGateway
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(gateway domain.CatalogGateway) *GetProductHandler {
	return &GetProductHandler{gateway: gateway}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	if q.ID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}

	product, err := h.gateway.GetProduct(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	return product, nil
}
