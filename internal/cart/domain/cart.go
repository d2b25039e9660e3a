package domain

import (
	"context"

	catalog "github.com/aykah/storefront/internal/catalog/domain"
)

// Item is a product in the cart together with its quantity. Quantity is
// always at least 1; removal deletes the item instead of zeroing it.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal returns price times quantity for this item
func (i *Item) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// Cart holds the items of one shopper, at most one item per product id.
// Insertion order is preserved for rendering.
type Cart struct {
	items map[uint]*Item
	order []uint
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{items: make(map[uint]*Item)}
}

// FromItems rebuilds a cart from a stored snapshot. Duplicate product ids
// collapse into one item and non-positive quantities are dropped, so a
// corrupt snapshot can never violate the cart invariants.
func FromItems(items []Item) *Cart {
	cart := NewCart()
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		if existing, ok := cart.items[item.Product.ID]; ok {
			existing.Quantity += item.Quantity
			continue
		}
		copied := item
		cart.items[item.Product.ID] = &copied
		cart.order = append(cart.order, item.Product.ID)
	}
	return cart
}

// AddItem inserts the product with quantity 1, or increments the quantity
// when the product is already present. It always succeeds.
func (c *Cart) AddItem(product catalog.Product) {
	if item, ok := c.items[product.ID]; ok {
		item.Quantity++
		return
	}
	c.items[product.ID] = &Item{Product: product, Quantity: 1}
	c.order = append(c.order, product.ID)
}

// RemoveItem deletes the item for the product id; absent ids are a no-op
func (c *Cart) RemoveItem(productID uint) {
	if _, ok := c.items[productID]; !ok {
		return
	}
	delete(c.items, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// SetQuantity sets the quantity for an existing item. A quantity below 1
// behaves as RemoveItem; out-of-range input is normalized, not rejected.
func (c *Cart) SetQuantity(productID uint, quantity int) {
	if quantity < 1 {
		c.RemoveItem(productID)
		return
	}
	if item, ok := c.items[productID]; ok {
		item.Quantity = quantity
	}
}

// Clear empties the cart unconditionally
func (c *Cart) Clear() {
	c.items = make(map[uint]*Item)
	c.order = nil
}

// Items returns the cart content in insertion order. The returned slice is
// a copy; mutating it does not touch the cart.
func (c *Cart) Items() []Item {
	items := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, *c.items[id])
	}
	return items
}

// Quantity returns the quantity for a product id, zero when absent
func (c *Cart) Quantity(productID uint) int {
	if item, ok := c.items[productID]; ok {
		return item.Quantity
	}
	return 0
}

// Total recomputes the cart total from the current items. The value is
// stored unrounded; rounding belongs to presentation.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// Count returns the summed quantity across all items
func (c *Cart) Count() int {
	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Len returns the number of distinct products in the cart
func (c *Cart) Len() int {
	return len(c.items)
}

// CartRepository defines the contract for per-shopper cart storage, keyed
// by the session key
type CartRepository interface {
	Get(ctx context.Context, key string) (*Cart, error)
	Save(ctx context.Context, key string, cart *Cart) error
	Delete(ctx context.Context, key string) error
}
