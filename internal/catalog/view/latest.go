package view

import (
	"sync"

	"github.com/aykah/storefront/internal/catalog/domain"
)

// Latest keeps the most recent completed result per query key. Concurrent
// refreshes of the same key may finish out of order; only the completion
// belonging to the newest started request is kept, so a slow stale
// response never overwrites fresher data.
type Latest struct {
	mu      sync.Mutex
	seq     map[string]uint64
	entries map[string]latestEntry
}

type latestEntry struct {
	seq    uint64
	result domain.Result[[]domain.Product]
}

// NewLatest creates an empty last-completed-wins result store
func NewLatest() *Latest {
	return &Latest{
		seq:     make(map[string]uint64),
		entries: make(map[string]latestEntry),
	}
}

// Begin registers a new in-flight request for key and returns its sequence
// number. The entry transitions to pending unless a success is already held.
func (l *Latest) Begin(key string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq[key]++
	seq := l.seq[key]

	if entry, ok := l.entries[key]; !ok || entry.result.State() != domain.StateSuccess {
		l.entries[key] = latestEntry{seq: seq, result: domain.Pending[[]domain.Product]()}
	}
	return seq
}

// Complete stores the result for the request identified by seq. It returns
// false when a newer request already completed, in which case the result
// is discarded.
func (l *Latest) Complete(key string, seq uint64, result domain.Result[[]domain.Product]) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry, ok := l.entries[key]; ok && entry.seq > seq && entry.result.State() != domain.StatePending {
		return false
	}
	l.entries[key] = latestEntry{seq: seq, result: result}
	return true
}

// Get returns the current result for key, pending when nothing has
// completed yet
func (l *Latest) Get(key string) domain.Result[[]domain.Product] {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry, ok := l.entries[key]; ok {
		return entry.result
	}
	return domain.Pending[[]domain.Product]()
}
