package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aykah/storefront/internal/cart/repository"
	"github.com/aykah/storefront/internal/cart/usecase/command"
	"github.com/aykah/storefront/internal/cart/usecase/query"
	catalog "github.com/aykah/storefront/internal/catalog/domain"
)

type stubCatalogGateway struct{}

func (stubCatalogGateway) ListProducts(_ context.Context, _ string) ([]catalog.Product, error) {
	return nil, nil
}

func (stubCatalogGateway) GetProduct(_ context.Context, id uint) (*catalog.Product, error) {
	products := map[uint]catalog.Product{
		1: {ID: 1, Title: "Backpack", Price: 109.95},
		2: {ID: 2, Title: "T-Shirt", Price: 22.3},
	}
	if p, ok := products[id]; ok {
		return &p, nil
	}
	return nil, catalog.ErrProductNotFound
}

func (stubCatalogGateway) ListCategories(_ context.Context) ([]string, error) {
	return nil, nil
}

// The handler registers Prometheus collectors, so it is built once for the
// whole test binary
var (
	routerOnce sync.Once
	testRouter *mux.Router
)

func router(t *testing.T) *mux.Router {
	t.Helper()

	routerOnce.Do(func() {
		carts := repository.NewMemoryCartRepository()
		gateway := stubCatalogGateway{}

		handler := NewCartHandler(
			command.NewAddItemHandler(carts, gateway),
			command.NewRemoveItemHandler(carts),
			command.NewUpdateQuantityHandler(carts),
			command.NewClearCartHandler(carts),
			query.NewGetCartHandler(carts),
			nil,
		)

		testRouter = mux.NewRouter()
		handler.RegisterRoutes(testRouter)
	})
	return testRouter
}

func doRequest(t *testing.T, method, target, sessionKey, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *strings.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	} else {
		reqBody = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reqBody)
	if sessionKey != "" {
		req.Header.Set("X-Session-Key", sessionKey)
	}

	rec := httptest.NewRecorder()
	router(t).ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func cartData(t *testing.T, resp Response) map[string]interface{} {
	t.Helper()

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	return data
}

func TestGetCartStartsEmpty(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/cart", "shopper-empty", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	data := cartData(t, resp)
	assert.Zero(t, data["count"])
}

func TestAddItemFlow(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/cart/items", "shopper-add", `{"product_id":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, http.MethodPost, "/api/cart/items", "shopper-add", `{"product_id":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data := cartData(t, resp)
	assert.EqualValues(t, 2, data["count"])
	assert.InDelta(t, 2*109.95, data["total"].(float64), 1e-9)
}

func TestAddUnknownProductIs404(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/cart/items", "shopper-404", `{"product_id":99}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}

func TestAddItemRejectsBadBody(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/cart/items", "shopper-bad", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateQuantityAndRemove(t *testing.T) {
	doRequest(t, http.MethodPost, "/api/cart/items", "shopper-upd", `{"product_id":2}`)

	rec := doRequest(t, http.MethodPatch, "/api/cart/items/2", "shopper-upd", `{"quantity":5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	data := cartData(t, decodeResponse(t, rec))
	assert.EqualValues(t, 5, data["count"])

	rec = doRequest(t, http.MethodDelete, "/api/cart/items/2", "shopper-upd", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data = cartData(t, decodeResponse(t, rec))
	assert.EqualValues(t, 0, data["count"])
}

func TestClearCart(t *testing.T) {
	doRequest(t, http.MethodPost, "/api/cart/items", "shopper-clear", `{"product_id":1}`)

	rec := doRequest(t, http.MethodDelete, "/api/cart", "shopper-clear", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, http.MethodGet, "/api/cart", "shopper-clear", "")
	data := cartData(t, decodeResponse(t, rec))
	assert.Zero(t, data["count"])
}

func TestMissingSessionKeyGetsOneIssued(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/cart", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Session-Key"))
}

func TestSessionsDoNotShareCarts(t *testing.T) {
	doRequest(t, http.MethodPost, "/api/cart/items", "shopper-a", `{"product_id":1}`)

	rec := doRequest(t, http.MethodGet, "/api/cart", "shopper-b", "")
	data := cartData(t, decodeResponse(t, rec))
	assert.Zero(t, data["count"])
}
