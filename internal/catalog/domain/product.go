package domain

// StockUntracked marks products whose stock level is not reported by the
// upstream catalog. Such products are always considered available.
const StockUntracked = -1

// Product represents a catalog product. Products are owned by the upstream
// catalog and are read-only to the rest of the system.
type Product struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
	Stock       int     `json:"stock"`
}

// Rating holds the aggregate review score of a product
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// StockTracked reports whether the upstream catalog tracks stock for this product
func (p Product) StockTracked() bool {
	return p.Stock != StockUntracked
}

// IsAvailable checks if the product can be purchased
func (p Product) IsAvailable() bool {
	return !p.StockTracked() || p.Stock > 0
}
