//go:build wireinject
// +build wireinject

package orders

import (
	"github.com/google/wire"

	catalog "github.com/aykah/storefront/internal/catalog/domain"
	"github.com/aykah/storefront/internal/orders/client"
	"github.com/aykah/storefront/internal/orders/delivery/http"
	sessionquery "github.com/aykah/storefront/internal/session/usecase/query"
)

// InitializeHTTPHandler initializes the order history HTTP handler
func InitializeHTTPHandler(c *client.OrdersClient, gateway catalog.CatalogGateway, sessions *sessionquery.CurrentSessionHandler) (*http.OrderHandler, error) {
	wire.Build(
		QuerySet,
		http.NewOrderHandler,
	)
	return nil, nil
}
