package middleware

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	cb := NewCircuitBreaker("test", 3, time.Minute)
	boom := errors.New("downstream down")

	for i := 0; i < 3; i++ {
		_ = cb.Call(func() error { return boom })
	}

	assert.Equal(t, StateOpen, cb.GetState())

	err := cb.Call(func() error { return nil })
	assert.Error(t, err)
}

func TestBreakerSuccessResetsFailureCount(t *testing.T) {
	cb := NewCircuitBreaker("test", 3, time.Minute)
	boom := errors.New("downstream down")

	_ = cb.Call(func() error { return boom })
	_ = cb.Call(func() error { return boom })
	require.NoError(t, cb.Call(func() error { return nil }))
	_ = cb.Call(func() error { return boom })
	_ = cb.Call(func() error { return boom })

	assert.Equal(t, StateClosed, cb.GetState())
}

func TestBreakerRecoversThroughHalfOpen(t *testing.T) {
	cb := NewCircuitBreaker("test", 1, 10*time.Millisecond)

	_ = cb.Call(func() error { return errors.New("boom") })
	require.Equal(t, StateOpen, cb.GetState())

	time.Sleep(20 * time.Millisecond)

	// Three consecutive successes in half-open close the circuit
	for i := 0; i < 3; i++ {
		require.NoError(t, cb.Call(func() error { return nil }))
	}
	assert.Equal(t, StateClosed, cb.GetState())
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	cb := NewCircuitBreaker("test", 1, 10*time.Millisecond)

	_ = cb.Call(func() error { return errors.New("boom") })
	time.Sleep(20 * time.Millisecond)

	_ = cb.Call(func() error { return errors.New("still down") })
	assert.Equal(t, StateOpen, cb.GetState())
}
