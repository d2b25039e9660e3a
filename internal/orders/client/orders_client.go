package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/aykah/storefront/internal/orders/domain"
	"github.com/aykah/storefront/pkg/logger"
)

// TokenSource supplies the bearer token for the calling session
type TokenSource func(ctx context.Context) string

// Config holds the upstream order history configuration
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// OrdersClient reads past checkouts from the upstream API
type OrdersClient struct {
	baseURL string
	client  *http.Client
	tokens  TokenSource
}

// New creates an orders client with traced outbound HTTP
func New(cfg Config, tokens TokenSource) *OrdersClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &OrdersClient{
		baseURL: cfg.BaseURL,
		tokens:  tokens,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// recordPayload mirrors the upstream cart history document
type recordPayload struct {
	ID       uint   `json:"id"`
	UserID   uint   `json:"userId"`
	Date     string `json:"date"`
	Products []struct {
		ProductID uint `json:"productId"`
		Quantity  int  `json:"quantity"`
	} `json:"products"`
}

func (p recordPayload) toDomain() domain.Record {
	createdAt, err := time.Parse(time.RFC3339, p.Date)
	if err != nil {
		// The upstream sometimes drops the time component
		createdAt, _ = time.Parse("2006-01-02", p.Date)
	}

	items := make([]domain.RecordItem, 0, len(p.Products))
	for _, item := range p.Products {
		items = append(items, domain.RecordItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return domain.Record{
		ID:        p.ID,
		UserID:    p.UserID,
		CreatedAt: createdAt,
		Items:     items,
	}
}

// ListOrders fetches all past orders of a user
func (c *OrdersClient) ListOrders(ctx context.Context, userID uint) ([]domain.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/carts/user/%d", c.baseURL, userID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	if c.tokens != nil {
		if token := c.tokens(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error(ctx).Err(err).Uint("user_id", userID).Msg("Order history request failed")
		return nil, errors.Join(domain.ErrOrdersUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		logger.Error(ctx).Int("status", resp.StatusCode).Msg("Order history answered with server error")
		return nil, fmt.Errorf("%w: upstream status %d", domain.ErrOrdersUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("unexpected upstream status %d", resp.StatusCode)
	}

	var payload []recordPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	records := make([]domain.Record, 0, len(payload))
	for _, p := range payload {
		records = append(records, p.toDomain())
	}
	return records, nil
}
