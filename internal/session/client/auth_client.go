package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/aykah/storefront/internal/session/domain"
	"github.com/aykah/storefront/pkg/logger"
)

// Config holds the upstream auth API configuration
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// AuthClient talks to the upstream auth API
type AuthClient struct {
	baseURL string
	client  *http.Client
}

// New creates an auth client with traced outbound HTTP
func New(cfg Config) *AuthClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &AuthClient{
		baseURL: cfg.BaseURL,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Login exchanges credentials for a bearer token
func (c *AuthClient) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	var response struct {
		Token string `json:"token"`
	}

	status, err := c.post(ctx, "/auth/login", payload, &response)
	if err != nil {
		return "", err
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return "", domain.ErrInvalidCredentials
	case status != http.StatusOK && status != http.StatusCreated:
		return "", fmt.Errorf("unexpected login status %d", status)
	case response.Token == "":
		return "", domain.ErrInvalidCredentials
	}

	return response.Token, nil
}

// GetUser fetches a user profile by id
func (c *AuthClient) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/users/%d", c.baseURL, id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error(ctx).Err(err).Uint("user_id", id).Msg("Auth request failed")
		return nil, errors.Join(domain.ErrAuthUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrUserNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected upstream status %d", resp.StatusCode)
	}

	// The upstream nests first/last name under a name object
	var payload struct {
		ID       uint   `json:"id"`
		Email    string `json:"email"`
		Username string `json:"username"`
		Name     struct {
			FirstName string `json:"firstname"`
			LastName  string `json:"lastname"`
		} `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	if payload.ID == 0 {
		return nil, domain.ErrUserNotFound
	}

	return &domain.User{
		ID:        payload.ID,
		Email:     payload.Email,
		Username:  payload.Username,
		FirstName: payload.Name.FirstName,
		LastName:  payload.Name.LastName,
	}, nil
}

// Register creates a new upstream user account
func (c *AuthClient) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	payload := map[string]interface{}{
		"email":    reg.Email,
		"username": reg.Username,
		"password": reg.Password,
		"name": map[string]string{
			"firstname": reg.FirstName,
			"lastname":  reg.LastName,
		},
	}

	var response struct {
		ID uint `json:"id"`
	}

	status, err := c.post(ctx, "/users", payload, &response)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, fmt.Errorf("unexpected registration status %d", status)
	}

	return &domain.User{
		ID:        response.ID,
		Email:     reg.Email,
		Username:  reg.Username,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
	}, nil
}

func (c *AuthClient) post(ctx context.Context, path string, body interface{}, out interface{}) (int, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error(ctx).Err(err).Str("path", path).Msg("Auth request failed")
		return 0, errors.Join(domain.ErrAuthUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusMultipleChoices {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}
