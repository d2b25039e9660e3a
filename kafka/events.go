package kafka

import "time"

// IntentEvent records a store mutation intent for downstream analytics.
// Fields not relevant to an event type are omitted from the payload.
type IntentEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	SessionKey string    `json:"session_key"`
	UserID     uint      `json:"user_id,omitempty"`
	ProductID  uint      `json:"product_id,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	CartTotal  float64   `json:"cart_total,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeCartItemAdded       = "cart.item_added"
	EventTypeCartItemRemoved     = "cart.item_removed"
	EventTypeCartCleared         = "cart.cleared"
	EventTypeWishlistItemAdded   = "wishlist.item_added"
	EventTypeWishlistItemRemoved = "wishlist.item_removed"
	EventTypeSessionLogin        = "session.login"
)

// Kafka topics
const (
	TopicCartEvents     = "storefront-cart"
	TopicWishlistEvents = "storefront-wishlist"
	TopicSessionEvents  = "storefront-session"
)
