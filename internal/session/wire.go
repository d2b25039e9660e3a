//go:build wireinject
// +build wireinject

package session

import (
	"github.com/google/wire"

	"github.com/aykah/storefront/internal/session/client"
	"github.com/aykah/storefront/internal/session/delivery/http"
	"github.com/aykah/storefront/internal/session/domain"
	"github.com/aykah/storefront/kafka"
)

// InitializeHTTPHandler initializes the session HTTP handler with all dependencies
func InitializeHTTPHandler(c *client.AuthClient, tokens domain.TokenStore, publisher *kafka.Publisher) (*http.SessionHandler, error) {
	wire.Build(
		ProvideAuthGateway,
		ProvideSessionRepository,
		UsecaseSet,
		http.NewSessionHandler,
	)
	return nil, nil
}
