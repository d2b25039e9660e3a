package domain

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("irrelevant"))
	require.NoError(t, err)
	return signed
}

func TestParseTokenNumericSubject(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": 7,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.False(t, claims.Expired(time.Now()))
}

func TestParseTokenStringSubject(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "42"})

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestParseTokenWithoutExpiryNeverExpires(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": 1})

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.IsZero())
	assert.False(t, claims.Expired(time.Now().Add(1000*time.Hour)))
}

func TestParseTokenExpiry(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": 1,
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.True(t, claims.Expired(time.Now()))
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.jwt")
	assert.Error(t, err)

	_, err = ParseToken("")
	assert.Error(t, err)
}

func TestParseTokenRejectsMissingSubject(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"email": "a@b.c"})

	_, err := ParseToken(token)
	assert.Error(t, err)
}

func TestSessionIsAuthenticated(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.IsAuthenticated())
	assert.False(t, (&Session{}).IsAuthenticated())
	assert.False(t, (&Session{Token: "tok"}).IsAuthenticated())
	assert.True(t, (&Session{Token: "tok", User: &User{ID: 1}}).IsAuthenticated())
}
