package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the fields extracted from an upstream-issued bearer token.
// The upstream API is the issuer; the storefront only reads claims, it
// never verifies or mints tokens.
type Claims struct {
	UserID    uint
	ExpiresAt time.Time
}

// Expired reports whether the token has passed its expiry. Tokens without
// an exp claim never expire locally.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// ParseToken extracts claims from a bearer token without verifying the
// signature
func ParseToken(token string) (*Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}

	claims := &Claims{}

	switch sub := mapClaims["sub"].(type) {
	case float64:
		claims.UserID = uint(sub)
	case string:
		id, err := strconv.ParseUint(sub, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid subject claim: %w", err)
		}
		claims.UserID = uint(id)
	default:
		return nil, fmt.Errorf("missing subject claim")
	}

	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}
