package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/aykah/storefront/internal/session/domain"
	"github.com/aykah/storefront/internal/session/usecase/query"
)

type contextKey string

const (
	// SessionKeyContextKey carries the per-client session key
	SessionKeyContextKey contextKey = "session_key"
	// SessionContextKey carries the resolved authenticated session
	SessionContextKey contextKey = "session"

	// SessionKeyHeader identifies the client device across requests
	SessionKeyHeader = "X-Session-Key"
)

// SessionKeyMiddleware resolves the per-client session key. Clients without
// a key are issued one in the response header so they can replay it.
func SessionKeyMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(SessionKeyHeader)
		if key == "" {
			key = uuid.NewString()
		}
		w.Header().Set(SessionKeyHeader, key)

		ctx := context.WithValue(r.Context(), SessionKeyContextKey, key)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// SessionKeyFromContext returns the session key installed by
// SessionKeyMiddleware, empty when the middleware did not run
func SessionKeyFromContext(ctx context.Context) string {
	key, _ := ctx.Value(SessionKeyContextKey).(string)
	return key
}

// RequireSession resolves the current session and rejects requests without
// one. An expired persisted token surfaces as a prompt to re-authenticate;
// there is no silent refresh.
func RequireSession(sessions *query.CurrentSessionHandler, next http.HandlerFunc) http.HandlerFunc {
	return SessionKeyMiddleware(func(w http.ResponseWriter, r *http.Request) {
		key := SessionKeyFromContext(r.Context())

		session, err := sessions.Handle(r.Context(), query.CurrentSessionQuery{SessionKey: key})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrSessionExpired):
				respondError(w, http.StatusUnauthorized, "Session expired, please sign in again")
			case errors.Is(err, domain.ErrNoSession):
				respondError(w, http.StatusUnauthorized, "Authentication required")
			default:
				respondError(w, http.StatusBadGateway, "Failed to resolve session")
			}
			return
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext returns the session installed by RequireSession
func SessionFromContext(ctx context.Context) *domain.Session {
	session, _ := ctx.Value(SessionContextKey).(*domain.Session)
	return session
}

// BearerTokenSource reads the caller's persisted upstream token, keyed by
// the session key installed by SessionKeyMiddleware. It returns the empty
// string for requests with no session key and for keys with no stored token,
// so upstream calls stay anonymous until the client signs in.
func BearerTokenSource(tokens domain.TokenStore) func(ctx context.Context) string {
	return func(ctx context.Context) string {
		key := SessionKeyFromContext(ctx)
		if key == "" {
			return ""
		}

		token, err := tokens.Load(ctx, key)
		if err != nil {
			return ""
		}
		return token
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
