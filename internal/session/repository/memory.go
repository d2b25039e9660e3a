package repository

import (
	"context"
	"sync"

	"github.com/aykah/storefront/internal/session/domain"
)

// MemorySessionRepository holds sessions in process memory, keyed by the
// per-client session key
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewMemorySessionRepository creates an empty session repository
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]*domain.Session),
	}
}

// Get returns the session for key, nil when absent
func (r *MemorySessionRepository) Get(_ context.Context, key string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[key], nil
}

// Put installs the session for key
func (r *MemorySessionRepository) Put(_ context.Context, key string, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[key] = session
	return nil
}

// Delete removes the session for key; absent keys are a no-op
func (r *MemorySessionRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, key)
	return nil
}
