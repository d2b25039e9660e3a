package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/aykah/storefront/internal/session/domain"
)

// RegisterCommand represents the command to create a shopper account
type RegisterCommand struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// RegisterHandler creates an account through the upstream auth API.
// Validation failures are resolved here and never reach the network.
type RegisterHandler struct {
	gateway domain.AuthGateway
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(gateway domain.AuthGateway) *RegisterHandler {
	return &RegisterHandler{gateway: gateway}
}

// Handle executes the register command
func (h *RegisterHandler) Handle(ctx context.Context, cmd RegisterCommand) (*domain.User, error) {
	if cmd.Email == "" || !strings.Contains(cmd.Email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if cmd.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(cmd.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}

	user, err := h.gateway.Register(ctx, domain.Registration{
		Email:     cmd.Email,
		Username:  cmd.Username,
		Password:  cmd.Password,
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	return user, nil
}
