package domain

import "context"

// User represents the profile of an authenticated shopper, owned by the
// upstream auth API
type User struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// Session holds the credentials of a shopper. A session is authenticated
// iff both the token and the user profile are present; there is no partial
// state in between.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// IsAuthenticated reports whether the session carries full credentials
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != "" && s.User != nil
}

// SessionRepository defines the contract for the in-memory session collection
type SessionRepository interface {
	Get(ctx context.Context, key string) (*Session, error)
	Put(ctx context.Context, key string, session *Session) error
	Delete(ctx context.Context, key string) error
}

// TokenStore defines the contract for durable token custody: a single
// string value per session key, written on login, deleted on logout, read
// to rehydrate a session after a reload.
type TokenStore interface {
	Save(ctx context.Context, key, token string) error
	Load(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// AuthGateway defines the contract for the upstream auth API
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (string, error)
	GetUser(ctx context.Context, id uint) (*User, error)
	Register(ctx context.Context, reg Registration) (*User, error)
}

// Registration is the payload for creating an upstream user account
type Registration struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}
