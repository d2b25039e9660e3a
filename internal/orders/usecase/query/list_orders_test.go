package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/aykah/storefront/internal/catalog/domain"
	"github.com/aykah/storefront/internal/orders/domain"
)

type stubOrderGateway struct {
	records []domain.Record
	err     error
}

func (s *stubOrderGateway) ListOrders(_ context.Context, _ uint) ([]domain.Record, error) {
	return s.records, s.err
}

type stubCatalogGateway struct {
	products []catalog.Product
	err      error
}

func (s *stubCatalogGateway) ListProducts(_ context.Context, _ string) ([]catalog.Product, error) {
	return s.products, s.err
}

func (s *stubCatalogGateway) GetProduct(_ context.Context, id uint) (*catalog.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, catalog.ErrProductNotFound
}

func (s *stubCatalogGateway) ListCategories(_ context.Context) ([]string, error) {
	return nil, s.err
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestListOrdersJoinsCatalogProducts(t *testing.T) {
	orders := &stubOrderGateway{records: []domain.Record{
		{ID: 1, UserID: 7, CreatedAt: day(1), Items: []domain.RecordItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		}},
	}}
	catalogGw := &stubCatalogGateway{products: []catalog.Product{
		{ID: 1, Title: "Backpack", Price: 109.95},
		{ID: 2, Title: "T-Shirt", Price: 22.3},
	}}

	handler := NewListOrdersHandler(orders, catalogGw)

	result, err := handler.Handle(context.Background(), ListOrdersQuery{UserID: 7})
	require.NoError(t, err)
	require.Len(t, result, 1)

	order := result[0]
	require.Len(t, order.Lines, 2)
	assert.Equal(t, "Backpack", order.Lines[0].Product.Title)
	assert.Equal(t, 2, order.Lines[0].Quantity)
	assert.InDelta(t, 2*109.95+22.3, order.Total, 1e-9)
	assert.Equal(t, "completed", order.Status)
}

func TestListOrdersNewestFirst(t *testing.T) {
	orders := &stubOrderGateway{records: []domain.Record{
		{ID: 1, UserID: 7, CreatedAt: day(1)},
		{ID: 2, UserID: 7, CreatedAt: day(5)},
		{ID: 3, UserID: 7, CreatedAt: day(3)},
	}}

	handler := NewListOrdersHandler(orders, &stubCatalogGateway{})

	result, err := handler.Handle(context.Background(), ListOrdersQuery{UserID: 7})
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, uint(2), result[0].ID)
	assert.Equal(t, uint(3), result[1].ID)
	assert.Equal(t, uint(1), result[2].ID)
}

func TestListOrdersDropsVanishedProducts(t *testing.T) {
	orders := &stubOrderGateway{records: []domain.Record{
		{ID: 1, UserID: 7, CreatedAt: day(1), Items: []domain.RecordItem{
			{ProductID: 1, Quantity: 1},
			{ProductID: 404, Quantity: 3},
		}},
	}}
	catalogGw := &stubCatalogGateway{products: []catalog.Product{
		{ID: 1, Title: "Backpack", Price: 109.95},
	}}

	handler := NewListOrdersHandler(orders, catalogGw)

	result, err := handler.Handle(context.Background(), ListOrdersQuery{UserID: 7})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Len(t, result[0].Lines, 1)
	assert.InDelta(t, 109.95, result[0].Total, 1e-9)
}

func TestListOrdersUpstreamFailure(t *testing.T) {
	handler := NewListOrdersHandler(&stubOrderGateway{err: domain.ErrOrdersUnavailable}, &stubCatalogGateway{})

	_, err := handler.Handle(context.Background(), ListOrdersQuery{UserID: 7})
	assert.ErrorIs(t, err, domain.ErrOrdersUnavailable)
}

func TestListOrdersRequiresUserID(t *testing.T) {
	handler := NewListOrdersHandler(&stubOrderGateway{}, &stubCatalogGateway{})

	_, err := handler.Handle(context.Background(), ListOrdersQuery{})
	assert.Error(t, err)
}
