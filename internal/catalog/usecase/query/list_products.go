package query

import (
	"context"

	"github.com/aykah/storefront/internal/catalog/domain"
	"github.com/aykah/storefront/internal/catalog/view"
)

// ListProductsQuery represents the query for a derived product view
type ListProductsQuery struct {
	Category string
	Filters  view.FilterState
}

// ListProductsHandler fetches the product list from the catalog and derives
// the filtered, sorted view to display. Raw lists are held per category with
// last-completed-wins semantics; the derived view is memoized on its inputs.
type ListProductsHandler struct {
	gateway domain.CatalogGateway
	latest  *view.Latest
	views   *view.Computer
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(gateway domain.CatalogGateway) *ListProductsHandler {
	return &ListProductsHandler{
		gateway: gateway,
		latest:  view.NewLatest(),
		views:   view.NewComputer(),
	}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) domain.Result[[]domain.Product] {
	key := "products:" + q.Category
	seq := h.latest.Begin(key)

	products, err := h.gateway.ListProducts(ctx, q.Category)
	if err != nil {
		h.latest.Complete(key, seq, domain.Failure[[]domain.Product](err))
	} else {
		h.latest.Complete(key, seq, domain.Success(products))
	}

	result := h.latest.Get(key)
	raw, ok := result.Value()
	if !ok {
		return result
	}

	return domain.Success(h.views.Compute(raw, q.Filters))
}
