package domain

import (
	"context"
	"errors"
	"time"

	catalog "github.com/aykah/storefront/internal/catalog/domain"
)

var (
	// ErrOrdersUnavailable is returned when the upstream order history
	// cannot be reached
	ErrOrdersUnavailable = errors.New("order history unavailable")
)

// Line is a single product line of a past order
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal returns price times quantity for this line
func (l Line) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Order is a past checkout recorded upstream. The storefront never
// creates orders; it only reads them back.
type Order struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Lines     []Line    `json:"lines"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordItem is a product reference inside an upstream order record
type RecordItem struct {
	ProductID uint
	Quantity  int
}

// Record is the raw upstream order document. It carries product ids
// only; resolving them against the catalog happens in the query layer.
type Record struct {
	ID        uint
	UserID    uint
	CreatedAt time.Time
	Items     []RecordItem
}

// OrderGateway reads the order history from the upstream API
type OrderGateway interface {
	ListOrders(ctx context.Context, userID uint) ([]Record, error)
}
