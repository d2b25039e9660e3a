package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/aykah/storefront/internal/catalog/domain"
	"github.com/aykah/storefront/pkg/logger"
)

// TokenSource supplies the bearer token for the calling session.
// It returns the empty string when no session exists.
type TokenSource func(ctx context.Context) string

// Config holds the upstream catalog configuration
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// CatalogClient talks to the upstream read-only catalog API
type CatalogClient struct {
	baseURL string
	client  *http.Client
	tokens  TokenSource
}

// New creates a catalog client with traced outbound HTTP
func New(cfg Config, tokens TokenSource) *CatalogClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &CatalogClient{
		baseURL: cfg.BaseURL,
		tokens:  tokens,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// productPayload mirrors the upstream product document. Stock is a pointer
// because the upstream may not track it; absence must not read as zero.
type productPayload struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Price       float64        `json:"price"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Image       string         `json:"image"`
	Rating      domain.Rating  `json:"rating"`
	Stock       *int           `json:"stock"`
}

func (p productPayload) toDomain() domain.Product {
	stock := domain.StockUntracked
	if p.Stock != nil {
		stock = *p.Stock
	}
	return domain.Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Rating:      p.Rating,
		Stock:       stock,
	}
}

// ListProducts fetches the full product list, optionally scoped to a category
func (c *CatalogClient) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	path := "/products"
	if category != "" {
		path = "/products/category/" + url.PathEscape(category)
	}

	var payload []productPayload
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]domain.Product, 0, len(payload))
	for _, p := range payload {
		products = append(products, p.toDomain())
	}
	return products, nil
}

// GetProduct fetches a single product by id
func (c *CatalogClient) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	var payload productPayload
	if err := c.get(ctx, fmt.Sprintf("/products/%d", id), &payload); err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}

	// The upstream answers 200 with an empty body for unknown ids
	if payload.ID == 0 {
		return nil, domain.ErrProductNotFound
	}

	product := payload.toDomain()
	return &product, nil
}

// ListCategories fetches the category tags known to the catalog
func (c *CatalogClient) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.get(ctx, "/products/categories", &categories); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (c *CatalogClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	if c.tokens != nil {
		if token := c.tokens(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error(ctx).Err(err).Str("path", path).Msg("Catalog request failed")
		return errors.Join(domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrProductNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domain.ErrUnauthorized
	case resp.StatusCode >= http.StatusInternalServerError:
		logger.Error(ctx).Int("status", resp.StatusCode).Str("path", path).Msg("Catalog answered with server error")
		return fmt.Errorf("%w: upstream status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected upstream status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
