package view

import (
	"sync"

	"github.com/aykah/storefront/internal/catalog/domain"
)

// Computer memoizes Apply over its last input tuple. The product slice is
// compared by identity (same backing array, same length) and the filter
// state by value, so a recomputation happens only when an input actually
// changed.
type Computer struct {
	mu       sync.Mutex
	products []domain.Product
	filters  FilterState
	result   []domain.Product
	valid    bool
}

// NewComputer creates an empty memoized view computer
func NewComputer() *Computer {
	return &Computer{}
}

// Compute returns the derived view for (products, filters), reusing the
// previous result when both inputs are unchanged.
func (c *Computer) Compute(products []domain.Product, filters FilterState) []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && sameSlice(c.products, products) && c.filters == filters {
		return c.result
	}

	c.products = products
	c.filters = filters
	c.result = Apply(products, filters)
	c.valid = true
	return c.result
}

// Invalidate drops the memoized result, forcing the next Compute to run
func (c *Computer) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
}

func sameSlice(a, b []domain.Product) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
