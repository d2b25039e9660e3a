package query

import (
	"context"
	"errors"
	"fmt"
	"sort"

	catalog "github.com/aykah/storefront/internal/catalog/domain"
	"github.com/aykah/storefront/internal/orders/domain"
	"github.com/aykah/storefront/pkg/logger"
)

// ListOrdersQuery represents the query to fetch a user's order history
type ListOrdersQuery struct {
	UserID uint
}

// ListOrdersHandler resolves past orders against the catalog so every
// line carries a full product, not just an id
type ListOrdersHandler struct {
	orders  domain.OrderGateway
	catalog catalog.CatalogGateway
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(orders domain.OrderGateway, gateway catalog.CatalogGateway) *ListOrdersHandler {
	return &ListOrdersHandler{orders: orders, catalog: gateway}
}

// Handle executes the list orders query. Lines whose product no longer
// exists in the catalog are dropped rather than failing the whole order.
func (h *ListOrdersHandler) Handle(ctx context.Context, q ListOrdersQuery) ([]domain.Order, error) {
	if q.UserID == 0 {
		return nil, fmt.Errorf("user id is required")
	}

	records, err := h.orders.ListOrders(ctx, q.UserID)
	if err != nil {
		return nil, err
	}

	products, err := h.catalog.ListProducts(ctx, "")
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	orders := make([]domain.Order, 0, len(records))
	for _, record := range records {
		order := domain.Order{
			ID:        record.ID,
			UserID:    record.UserID,
			CreatedAt: record.CreatedAt,
			Status:    "completed",
			Lines:     make([]domain.Line, 0, len(record.Items)),
		}

		for _, item := range record.Items {
			product, ok := byID[item.ProductID]
			if !ok {
				product, err = h.lookupProduct(ctx, item.ProductID)
				if err != nil {
					continue
				}
			}
			line := domain.Line{Product: product, Quantity: item.Quantity}
			order.Lines = append(order.Lines, line)
			order.Total += line.Subtotal()
		}

		orders = append(orders, order)
	}

	// Newest first
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (h *ListOrdersHandler) lookupProduct(ctx context.Context, id uint) (catalog.Product, error) {
	product, err := h.catalog.GetProduct(ctx, id)
	if err != nil {
		if !errors.Is(err, catalog.ErrProductNotFound) {
			logger.Warn(ctx).Err(err).Uint("product_id", id).Msg("Could not resolve order line product")
		}
		return catalog.Product{}, err
	}
	return *product, nil
}
