package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aykah/storefront/internal/catalog/domain"
)

func TestListProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"title":"Backpack","price":109.95,"description":"Fits laptops","category":"men's clothing","image":"1.jpg","rating":{"rate":3.9,"count":120}},
			{"id":2,"title":"T-Shirt","price":22.3,"category":"men's clothing","rating":{"rate":4.1,"count":259},"stock":0}
		]`))
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL}, nil)

	products, err := c.ListProducts(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, products, 2)

	// Absent stock means untracked, explicit zero means sold out
	assert.Equal(t, domain.StockUntracked, products[0].Stock)
	assert.True(t, products[0].IsAvailable())
	assert.Equal(t, 0, products[1].Stock)
	assert.False(t, products[1].IsAvailable())
}

func TestListProductsByCategoryEscapesPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL}, nil)

	_, err := c.ListProducts(context.Background(), "men's clothing")
	require.NoError(t, err)
	assert.Equal(t, "/products/category/men%27s%20clothing", gotPath)
}

func TestGetProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/1", r.URL.Path)
		w.Write([]byte(`{"id":1,"title":"Backpack","price":109.95,"rating":{"rate":3.9,"count":120}}`))
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL}, nil)

	product, err := c.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Backpack", product.Title)
	assert.InDelta(t, 3.9, product.Rating.Rate, 1e-9)
}

func TestGetProductEmptyBodyMeansNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The upstream answers 200 with no document for unknown ids
		w.Write([]byte(`null`))
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL}, nil)

	_, err := c.GetProduct(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetProduct404(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL}, nil)

	_, err := c.GetProduct(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestServerErrorMapsToUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL}, nil)

	_, err := c.ListProducts(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestUnreachableUpstreamMapsToUnavailable(t *testing.T) {
	c := New(Config{BaseURL: "http://127.0.0.1:1"}, nil)

	_, err := c.ListProducts(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestAuthErrorMapsToUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL}, nil)

	_, err := c.ListCategories(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBearerTokenIsSentWhenAvailable(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL}, func(context.Context) string { return "tok-123" })

	_, err := c.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestListCategories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/categories", r.URL.Path)
		w.Write([]byte(`["electronics","jewelery","men's clothing","women's clothing"]`))
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL}, nil)

	categories, err := c.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 4)
}
