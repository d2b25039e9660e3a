package session

import (
	"github.com/google/wire"

	"github.com/aykah/storefront/internal/session/client"
	"github.com/aykah/storefront/internal/session/domain"
	"github.com/aykah/storefront/internal/session/repository"
	"github.com/aykah/storefront/internal/session/usecase/command"
	"github.com/aykah/storefront/internal/session/usecase/query"
)

// ProvideAuthGateway provides the upstream auth gateway
func ProvideAuthGateway(c *client.AuthClient) domain.AuthGateway {
	return c
}

// ProvideSessionRepository provides the in-memory session collection
func ProvideSessionRepository() domain.SessionRepository {
	return repository.NewMemorySessionRepository()
}

// Wire sets
var UsecaseSet = wire.NewSet(
	command.NewLoginHandler,
	command.NewLogoutHandler,
	command.NewRegisterHandler,
	query.NewCurrentSessionHandler,
)
