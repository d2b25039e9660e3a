package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aykah/storefront/internal/orders/domain"
)

func TestListOrders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/carts/user/7", r.URL.Path)
		w.Write([]byte(`[
			{"id":1,"userId":7,"date":"2020-03-02T00:00:00.000Z","products":[{"productId":1,"quantity":4},{"productId":2,"quantity":1}]},
			{"id":2,"userId":7,"date":"2020-03-01","products":[{"productId":5,"quantity":2}]}
		]`))
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL}, nil)

	records, err := c.ListOrders(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, uint(1), records[0].ID)
	require.Len(t, records[0].Items, 2)
	assert.Equal(t, uint(1), records[0].Items[0].ProductID)
	assert.Equal(t, 4, records[0].Items[0].Quantity)
	assert.Equal(t, 2020, records[0].CreatedAt.Year())

	// Date-only timestamps still parse
	assert.Equal(t, time.March, records[1].CreatedAt.Month())
}

func TestListOrdersServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL}, nil)

	_, err := c.ListOrders(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrOrdersUnavailable)
}

func TestListOrdersUnreachable(t *testing.T) {
	c := New(Config{BaseURL: "http://127.0.0.1:1"}, nil)

	_, err := c.ListOrders(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrOrdersUnavailable)
}
