package query

import (
	"context"
	"fmt"

	"github.com/aykah/storefront/internal/catalog/domain"
)

// ListCategoriesQuery represents the query to list catalog categories
type ListCategoriesQuery struct{}

// ListCategoriesHandler handles category listing
type ListCategoriesHandler struct {
	gateway domain.CatalogGateway
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(gateway domain.CatalogGateway) *ListCategoriesHandler {
	return &ListCategoriesHandler{gateway: gateway}
}

// Handle executes the list categories query
func (h *ListCategoriesHandler) Handle(ctx context.Context, _ ListCategoriesQuery) ([]string, error) {
	categories, err := h.gateway.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
