package catalog

import (
	"github.com/google/wire"

	"github.com/aykah/storefront/internal/catalog/client"
	"github.com/aykah/storefront/internal/catalog/domain"
	"github.com/aykah/storefront/internal/catalog/usecase/query"
)

// ProvideCatalogGateway provides the upstream catalog gateway
func ProvideCatalogGateway(c *client.CatalogClient) domain.CatalogGateway {
	return c
}

// Wire sets
var QuerySet = wire.NewSet(
	query.NewListProductsHandler,
	query.NewGetProductHandler,
	query.NewListCategoriesHandler,
)
