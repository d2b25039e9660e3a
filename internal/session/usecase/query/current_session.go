package query

import (
	"context"
	"fmt"
	"time"

	"github.com/aykah/storefront/internal/session/domain"
	"github.com/aykah/storefront/pkg/logger"
)

// CurrentSessionQuery represents the query for the active session
type CurrentSessionQuery struct {
	SessionKey string
}

// CurrentSessionHandler resolves the active session for a key. When no
// in-memory session exists but a durable token does, the session is
// rehydrated from the token, which is what makes login survive a reload.
type CurrentSessionHandler struct {
	gateway  domain.AuthGateway
	sessions domain.SessionRepository
	tokens   domain.TokenStore
}

// NewCurrentSessionHandler creates a new current session handler
func NewCurrentSessionHandler(gateway domain.AuthGateway, sessions domain.SessionRepository, tokens domain.TokenStore) *CurrentSessionHandler {
	return &CurrentSessionHandler{gateway: gateway, sessions: sessions, tokens: tokens}
}

// Handle executes the current session query
func (h *CurrentSessionHandler) Handle(ctx context.Context, q CurrentSessionQuery) (*domain.Session, error) {
	if q.SessionKey == "" {
		return nil, domain.ErrNoSession
	}

	session, err := h.sessions.Get(ctx, q.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if session.IsAuthenticated() {
		return session, nil
	}

	token, err := h.tokens.Load(ctx, q.SessionKey)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to load persisted token")
		return nil, domain.ErrNoSession
	}
	if token == "" {
		return nil, domain.ErrNoSession
	}

	claims, err := domain.ParseToken(token)
	if err != nil {
		// A corrupt persisted token is unrecoverable, drop it
		_ = h.tokens.Delete(ctx, q.SessionKey)
		return nil, domain.ErrNoSession
	}
	if claims.Expired(time.Now()) {
		_ = h.tokens.Delete(ctx, q.SessionKey)
		return nil, domain.ErrSessionExpired
	}

	user, err := h.gateway.GetUser(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to rehydrate session: %w", err)
	}

	session = &domain.Session{Token: token, User: user}
	if err := h.sessions.Put(ctx, q.SessionKey, session); err != nil {
		return nil, fmt.Errorf("failed to install session: %w", err)
	}

	return session, nil
}
