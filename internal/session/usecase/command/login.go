package command

import (
	"context"
	"fmt"
	"time"

	"github.com/aykah/storefront/internal/session/domain"
	"github.com/aykah/storefront/pkg/logger"
)

// LoginCommand represents the command to authenticate a shopper
type LoginCommand struct {
	SessionKey string
	Email      string
	Password   string
}

// LoginHandler exchanges credentials with the upstream auth API, installs
// the session, and persists the token for reload survival
type LoginHandler struct {
	gateway  domain.AuthGateway
	sessions domain.SessionRepository
	tokens   domain.TokenStore
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(gateway domain.AuthGateway, sessions domain.SessionRepository, tokens domain.TokenStore) *LoginHandler {
	return &LoginHandler{gateway: gateway, sessions: sessions, tokens: tokens}
}

// Handle executes the login command
func (h *LoginHandler) Handle(ctx context.Context, cmd LoginCommand) (*domain.Session, error) {
	if cmd.SessionKey == "" {
		return nil, fmt.Errorf("session key is required")
	}
	if cmd.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	token, err := h.gateway.Login(ctx, cmd.Email, cmd.Password)
	if err != nil {
		return nil, err
	}

	claims, err := domain.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("upstream issued an unreadable token: %w", err)
	}
	if claims.Expired(time.Now()) {
		return nil, domain.ErrSessionExpired
	}

	user, err := h.gateway.GetUser(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}

	session := &domain.Session{Token: token, User: user}
	if err := h.sessions.Put(ctx, cmd.SessionKey, session); err != nil {
		return nil, fmt.Errorf("failed to install session: %w", err)
	}

	// Token custody is what makes the session survive a reload. A failed
	// write degrades durability, not the login itself.
	if err := h.tokens.Save(ctx, cmd.SessionKey, token); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to persist session token")
	}

	return session, nil
}
