package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aykah/storefront/internal/session/repository"
)

func TestSessionKeyMiddlewareIssuesKeyWhenAbsent(t *testing.T) {
	var captured string
	handler := SessionKeyMiddleware(func(w http.ResponseWriter, r *http.Request) {
		captured = SessionKeyFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

	require.NotEmpty(t, captured)
	assert.Equal(t, captured, rec.Header().Get(SessionKeyHeader))
}

func TestSessionKeyMiddlewareEchoesClientKey(t *testing.T) {
	var captured string
	handler := SessionKeyMiddleware(func(w http.ResponseWriter, r *http.Request) {
		captured = SessionKeyFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set(SessionKeyHeader, "device-1")

	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, "device-1", captured)
	assert.Equal(t, "device-1", rec.Header().Get(SessionKeyHeader))
}

func TestBearerTokenSourceReadsStoredToken(t *testing.T) {
	ctx := context.Background()
	tokens := repository.NewMemoryTokenStore()
	require.NoError(t, tokens.Save(ctx, "device-1", "upstream-token"))

	source := BearerTokenSource(tokens)

	withKey := context.WithValue(ctx, SessionKeyContextKey, "device-1")
	assert.Equal(t, "upstream-token", source(withKey))
}

func TestBearerTokenSourceStaysAnonymous(t *testing.T) {
	ctx := context.Background()
	tokens := repository.NewMemoryTokenStore()

	source := BearerTokenSource(tokens)

	assert.Empty(t, source(ctx), "no session key resolves no token")

	withUnknownKey := context.WithValue(ctx, SessionKeyContextKey, "device-2")
	assert.Empty(t, source(withUnknownKey), "a key with no stored token stays anonymous")
}
