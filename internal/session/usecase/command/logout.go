package command

import (
	"context"
	"fmt"

	"github.com/aykah/storefront/internal/session/domain"
	"github.com/aykah/storefront/pkg/logger"
)

// LogoutCommand represents the command to end a session
type LogoutCommand struct {
	SessionKey string
}

// LogoutHandler clears the session and the persisted token. Logging out a
// key with no session is a no-op, not an error.
type LogoutHandler struct {
	sessions domain.SessionRepository
	tokens   domain.TokenStore
}

// NewLogoutHandler creates a new logout handler
func NewLogoutHandler(sessions domain.SessionRepository, tokens domain.TokenStore) *LogoutHandler {
	return &LogoutHandler{sessions: sessions, tokens: tokens}
}

// Handle executes the logout command
func (h *LogoutHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if cmd.SessionKey == "" {
		return fmt.Errorf("session key is required")
	}

	if err := h.sessions.Delete(ctx, cmd.SessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	if err := h.tokens.Delete(ctx, cmd.SessionKey); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to delete persisted token")
	}

	return nil
}
