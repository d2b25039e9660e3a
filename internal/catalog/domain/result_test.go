package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultPending(t *testing.T) {
	r := Pending[[]Product]()

	assert.Equal(t, StatePending, r.State())
	assert.NoError(t, r.Err())

	_, ok := r.Value()
	assert.False(t, ok)
}

func TestResultSuccess(t *testing.T) {
	r := Success([]Product{{ID: 1}})

	assert.Equal(t, StateSuccess, r.State())
	assert.NoError(t, r.Err())

	value, ok := r.Value()
	require.True(t, ok)
	assert.Len(t, value, 1)
}

func TestResultFailure(t *testing.T) {
	cause := errors.New("boom")
	r := Failure[[]Product](cause)

	assert.Equal(t, StateFailure, r.State())
	assert.ErrorIs(t, r.Err(), cause)

	_, ok := r.Value()
	assert.False(t, ok)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "success", StateSuccess.String())
	assert.Equal(t, "failure", StateFailure.String())
}

func TestProductAvailability(t *testing.T) {
	assert.True(t, Product{Stock: StockUntracked}.IsAvailable())
	assert.True(t, Product{Stock: 3}.IsAvailable())
	assert.False(t, Product{Stock: 0}.IsAvailable())

	assert.False(t, Product{Stock: StockUntracked}.StockTracked())
	assert.True(t, Product{Stock: 0}.StockTracked())
}
