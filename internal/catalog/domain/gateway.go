package domain

import "context"

// CatalogGateway defines the contract for upstream catalog access
type CatalogGateway interface {
	ListProducts(ctx context.Context, category string) ([]Product, error)
	GetProduct(ctx context.Context, id uint) (*Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}
