package domain

import (
	"context"

	catalog "github.com/aykah/storefront/internal/catalog/domain"
)

// Wishlist holds saved products for one shopper, at most one entry per
// product id and no quantity. Insertion order is preserved for rendering.
type Wishlist struct {
	products map[uint]catalog.Product
	order    []uint
}

// NewWishlist creates an empty wishlist
func NewWishlist() *Wishlist {
	return &Wishlist{products: make(map[uint]catalog.Product)}
}

// FromProducts rebuilds a wishlist from a stored snapshot, collapsing
// duplicate product ids
func FromProducts(products []catalog.Product) *Wishlist {
	w := NewWishlist()
	for _, p := range products {
		w.Add(p)
	}
	return w
}

// Add saves the product. Adding an already-present product is a no-op; the
// upsert is idempotent.
func (w *Wishlist) Add(product catalog.Product) {
	if _, ok := w.products[product.ID]; ok {
		return
	}
	w.products[product.ID] = product
	w.order = append(w.order, product.ID)
}

// Remove deletes the entry for the product id; absent ids are a no-op
func (w *Wishlist) Remove(productID uint) {
	if _, ok := w.products[productID]; !ok {
		return
	}
	delete(w.products, productID)
	for i, id := range w.order {
		if id == productID {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Clear empties the wishlist unconditionally
func (w *Wishlist) Clear() {
	w.products = make(map[uint]catalog.Product)
	w.order = nil
}

// Contains reports whether the product id is saved
func (w *Wishlist) Contains(productID uint) bool {
	_, ok := w.products[productID]
	return ok
}

// Products returns the saved products in insertion order as a copy
func (w *Wishlist) Products() []catalog.Product {
	products := make([]catalog.Product, 0, len(w.order))
	for _, id := range w.order {
		products = append(products, w.products[id])
	}
	return products
}

// Len returns the number of saved products
func (w *Wishlist) Len() int {
	return len(w.products)
}

// WishlistRepository defines the contract for per-shopper wishlist storage,
// keyed by the session key
type WishlistRepository interface {
	Get(ctx context.Context, key string) (*Wishlist, error)
	Save(ctx context.Context, key string, wishlist *Wishlist) error
	Delete(ctx context.Context, key string) error
}
