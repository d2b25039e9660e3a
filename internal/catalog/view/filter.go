package view

import (
	"math"
	"sort"
	"strings"

	"github.com/aykah/storefront/internal/catalog/domain"
)

// SortKey selects the ordering of a derived product view
type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// ParseSortKey maps a request parameter to a sort key. Unknown values fall
// back to the input order rather than erroring.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceLow, SortPriceHigh, SortRating, SortNewest:
		return SortKey(s)
	default:
		return SortNone
	}
}

// FilterState holds the ephemeral view parameters of the active product
// list. The zero Rating means "no rating filter". FilterState is a
// comparable value type so computed views can be memoized on it.
type FilterState struct {
	PriceRange  [2]float64
	Rating      int
	InStock     bool
	SearchQuery string
	SortBy      SortKey
}

// DefaultFilters returns the widest filter state: every product passes
func DefaultFilters() FilterState {
	return FilterState{
		PriceRange: [2]float64{0, math.Inf(1)},
	}
}

// Normalize clamps out-of-range values instead of rejecting them: negative
// prices become zero, an inverted price band is swapped, a rating outside
// 1..5 turns the rating filter off.
func (f FilterState) Normalize() FilterState {
	if f.PriceRange[0] < 0 {
		f.PriceRange[0] = 0
	}
	if f.PriceRange[1] < 0 {
		f.PriceRange[1] = 0
	}
	if f.PriceRange[0] > f.PriceRange[1] {
		f.PriceRange[0], f.PriceRange[1] = f.PriceRange[1], f.PriceRange[0]
	}
	if f.Rating < 0 || f.Rating > 5 {
		f.Rating = 0
	}
	return f
}

// Apply computes the ordered product sequence to display for the given
// filter state. It is a pure function: the input slice is never mutated
// and identical inputs produce identical output.
func Apply(products []domain.Product, filters FilterState) []domain.Product {
	filters = filters.Normalize()

	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matches(&p, filters) {
			result = append(result, p)
		}
	}

	switch filters.SortBy {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating.Rate > result[j].Rating.Rate
		})
	case SortNewest:
		// Descending id stands in for recency, the catalog has no
		// creation timestamp
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].ID > result[j].ID
		})
	}

	return result
}

func matches(p *domain.Product, f FilterState) bool {
	if p.Price < f.PriceRange[0] || p.Price > f.PriceRange[1] {
		return false
	}

	if f.Rating > 0 && int(math.Floor(p.Rating.Rate)) < f.Rating {
		return false
	}

	if f.InStock && !p.IsAvailable() {
		return false
	}

	if f.SearchQuery != "" {
		query := strings.ToLower(f.SearchQuery)
		title := strings.ToLower(p.Title)
		description := strings.ToLower(p.Description)
		if !strings.Contains(title, query) && !strings.Contains(description, query) {
			return false
		}
	}

	return true
}
