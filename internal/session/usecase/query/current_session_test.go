package query

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aykah/storefront/internal/session/domain"
	"github.com/aykah/storefront/internal/session/repository"
)

type stubAuthGateway struct {
	user     *domain.User
	userErr  error
	getCalls int
}

func (s *stubAuthGateway) Login(_ context.Context, _, _ string) (string, error) {
	return "", domain.ErrInvalidCredentials
}

func (s *stubAuthGateway) GetUser(_ context.Context, _ uint) (*domain.User, error) {
	s.getCalls++
	return s.user, s.userErr
}

func (s *stubAuthGateway) Register(_ context.Context, _ domain.Registration) (*domain.User, error) {
	return s.user, s.userErr
}

func tokenWithExpiry(t *testing.T, userID uint, expiresIn time.Duration) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString([]byte("upstream-secret"))
	require.NoError(t, err)
	return signed
}

func TestCurrentSessionReturnsInMemorySession(t *testing.T) {
	gateway := &stubAuthGateway{}
	sessions := repository.NewMemorySessionRepository()
	tokens := repository.NewMemoryTokenStore()
	handler := NewCurrentSessionHandler(gateway, sessions, tokens)

	installed := &domain.Session{Token: "tok", User: &domain.User{ID: 7}}
	require.NoError(t, sessions.Put(context.Background(), "session-1", installed))

	session, err := handler.Handle(context.Background(), CurrentSessionQuery{SessionKey: "session-1"})

	require.NoError(t, err)
	assert.Equal(t, uint(7), session.User.ID)
	assert.Zero(t, gateway.getCalls)
}

func TestCurrentSessionRehydratesFromPersistedToken(t *testing.T) {
	token := tokenWithExpiry(t, 7, time.Hour)
	gateway := &stubAuthGateway{user: &domain.User{ID: 7, Username: "mor_2314"}}
	sessions := repository.NewMemorySessionRepository()
	tokens := repository.NewMemoryTokenStore()
	handler := NewCurrentSessionHandler(gateway, sessions, tokens)

	require.NoError(t, tokens.Save(context.Background(), "session-1", token))

	session, err := handler.Handle(context.Background(), CurrentSessionQuery{SessionKey: "session-1"})

	require.NoError(t, err)
	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, token, session.Token)
	assert.Equal(t, 1, gateway.getCalls)

	// The rehydrated session is installed; a second resolve skips the gateway
	_, err = handler.Handle(context.Background(), CurrentSessionQuery{SessionKey: "session-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, gateway.getCalls)
}

func TestCurrentSessionExpiredTokenIsDroppedNotRefreshed(t *testing.T) {
	token := tokenWithExpiry(t, 7, -time.Minute)
	gateway := &stubAuthGateway{user: &domain.User{ID: 7}}
	tokens := repository.NewMemoryTokenStore()
	handler := NewCurrentSessionHandler(gateway, repository.NewMemorySessionRepository(), tokens)

	require.NoError(t, tokens.Save(context.Background(), "session-1", token))

	_, err := handler.Handle(context.Background(), CurrentSessionQuery{SessionKey: "session-1"})
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	// The stale token must be gone so the next resolve reports no session
	_, err = handler.Handle(context.Background(), CurrentSessionQuery{SessionKey: "session-1"})
	assert.ErrorIs(t, err, domain.ErrNoSession)
	assert.Zero(t, gateway.getCalls)
}

func TestCurrentSessionCorruptTokenIsDropped(t *testing.T) {
	tokens := repository.NewMemoryTokenStore()
	handler := NewCurrentSessionHandler(&stubAuthGateway{}, repository.NewMemorySessionRepository(), tokens)

	require.NoError(t, tokens.Save(context.Background(), "session-1", "garbage"))

	_, err := handler.Handle(context.Background(), CurrentSessionQuery{SessionKey: "session-1"})
	assert.ErrorIs(t, err, domain.ErrNoSession)

	persisted, err := tokens.Load(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestCurrentSessionWithoutAnythingIsNoSession(t *testing.T) {
	handler := NewCurrentSessionHandler(&stubAuthGateway{}, repository.NewMemorySessionRepository(), repository.NewMemoryTokenStore())

	_, err := handler.Handle(context.Background(), CurrentSessionQuery{SessionKey: "fresh"})
	assert.ErrorIs(t, err, domain.ErrNoSession)

	_, err = handler.Handle(context.Background(), CurrentSessionQuery{})
	assert.ErrorIs(t, err, domain.ErrNoSession)
}
