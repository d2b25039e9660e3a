//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	"github.com/aykah/storefront/internal/catalog/client"
	"github.com/aykah/storefront/internal/catalog/delivery/http"
)

// InitializeHTTPHandler initializes the catalog HTTP handler with all dependencies
func InitializeHTTPHandler(c *client.CatalogClient) (*http.CatalogHandler, error) {
	wire.Build(
		ProvideCatalogGateway,
		QuerySet,
		http.NewCatalogHandler,
	)
	return nil, nil
}
