package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputerReusesResultForUnchangedInputs(t *testing.T) {
	c := NewComputer()
	products := sampleProducts()
	filters := DefaultFilters()
	filters.SortBy = SortPriceLow

	first := c.Compute(products, filters)
	second := c.Compute(products, filters)

	require.NotEmpty(t, first)
	// Same backing array means the memoized result was returned
	assert.Same(t, &first[0], &second[0])
}

func TestComputerRecomputesWhenFiltersChange(t *testing.T) {
	c := NewComputer()
	products := sampleProducts()

	all := c.Compute(products, DefaultFilters())

	narrowed := DefaultFilters()
	narrowed.SearchQuery = "backpack"
	filtered := c.Compute(products, narrowed)

	assert.Len(t, all, len(products))
	require.Len(t, filtered, 1)
	assert.Equal(t, uint(1), filtered[0].ID)
}

func TestComputerRecomputesWhenProductsChange(t *testing.T) {
	c := NewComputer()
	filters := DefaultFilters()

	first := c.Compute(sampleProducts(), filters)
	second := c.Compute(sampleProducts()[:2], filters)

	assert.Len(t, first, 5)
	assert.Len(t, second, 2)
}

func TestComputerInvalidateForcesRecompute(t *testing.T) {
	c := NewComputer()
	products := sampleProducts()
	filters := DefaultFilters()

	first := c.Compute(products, filters)
	c.Invalidate()
	second := c.Compute(products, filters)

	require.NotEmpty(t, first)
	require.NotEmpty(t, second)
	assert.NotSame(t, &first[0], &second[0])
	assert.Equal(t, first, second)
}
