//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"

	"github.com/aykah/storefront/internal/cart/delivery/http"
	"github.com/aykah/storefront/internal/cart/domain"
	catalog "github.com/aykah/storefront/internal/catalog/domain"
	"github.com/aykah/storefront/kafka"
)

// InitializeHTTPHandler initializes the cart HTTP handler with all
// dependencies. The repository arrives already decorated; the publisher
// may be nil.
func InitializeHTTPHandler(repo domain.CartRepository, gateway catalog.CatalogGateway, publisher *kafka.Publisher) (*http.CartHandler, error) {
	wire.Build(
		UsecaseSet,
		http.NewCartHandler,
	)
	return nil, nil
}
