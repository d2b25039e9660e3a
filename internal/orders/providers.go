package orders

import (
	"github.com/google/wire"

	"github.com/aykah/storefront/internal/orders/client"
	"github.com/aykah/storefront/internal/orders/domain"
	"github.com/aykah/storefront/internal/orders/usecase/query"
)

// ProvideOrderGateway adapts the upstream client to the domain gateway
func ProvideOrderGateway(c *client.OrdersClient) domain.OrderGateway {
	return c
}

// Wire sets
var QuerySet = wire.NewSet(
	ProvideOrderGateway,
	query.NewListOrdersHandler,
)
