package kafka

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderPlacedEvent is emitted after a cart has been converted into an order.
// Item prices carry the discounted unit price snapshotted at checkout.
type OrderPlacedEvent struct {
	EventID       string           `json:"event_id"`
	EventType     string           `json:"event_type"`
	OrderID       uint             `json:"order_id"`
	UserID        uint             `json:"user_id"`
	TotalPrice    decimal.Decimal  `json:"total_price"`
	PaymentMethod string           `json:"payment_method"`
	Items         []OrderEventItem `json:"items"`
	Timestamp     time.Time        `json:"timestamp"`
}

// OrderEventItem is one purchased line inside an OrderPlacedEvent
type OrderEventItem struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// Event types
const (
	EventTypeOrderPlaced = "order.placed"
)

// Kafka topics
const (
	TopicOrderPlaced = "order-placed"
)
