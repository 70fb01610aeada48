package domain

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidStatus     = errors.New("invalid order status")
)

// ValidationError reports checkout form problems field by field so the
// delivery layer can surface them next to the inputs. Unexpected repository
// failures must never be wrapped in one.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)
	return "invalid checkout fields: " + strings.Join(names, ", ")
}

// Order is an immutable record of a completed checkout. Prices and product
// names are snapshotted at placement time; later catalog edits never change
// what an order says the customer paid.
type Order struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	UserID        uint            `json:"user_id" gorm:"not null;index"`
	FullName      string          `json:"full_name" gorm:"not null"`
	Email         string          `json:"email" gorm:"not null"`
	Phone         string          `json:"phone" gorm:"not null"`
	Address       string          `json:"address" gorm:"not null"`
	City          string          `json:"city" gorm:"not null"`
	State         string          `json:"state" gorm:"not null"`
	Pincode       string          `json:"pincode" gorm:"not null"`
	PaymentMethod string          `json:"payment_method" gorm:"default:'cod'"` // cod, card, upi
	PaymentStatus string          `json:"payment_status" gorm:"default:'pending'"`
	OrderStatus   string          `json:"order_status" gorm:"default:'processing'"`
	TotalPrice    decimal.Decimal `json:"total_price" gorm:"type:numeric(10,2);not null"`
	Items         []OrderItem     `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one purchased line. ProductName and Price are copies taken at
// checkout, Price being the discounted unit price at that moment.
type OrderItem struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	OrderID     uint            `json:"order_id" gorm:"not null;index"`
	ProductID   uint            `json:"product_id" gorm:"not null"`
	ProductName string          `json:"product_name" gorm:"not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// TotalPrice is the snapshotted unit price times quantity
func (i *OrderItem) TotalPrice() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Payment statuses
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// Order statuses
const (
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status
func ValidOrderStatus(s string) bool {
	switch s {
	case StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}

// OrderRepository defines the contract for order data access. PlaceOrder runs
// in a single transaction: it snapshots the user's cart into order items,
// decrements product stock, and empties the cart, rolling everything back if
// any product no longer has enough stock.
type OrderRepository interface {
	PlaceOrder(order *Order) error
	FindByIDForUser(orderID, userID uint) (*Order, error)
	FindByUserID(userID uint) ([]Order, error)
	FindAll(limit, offset int) ([]Order, error)
	UpdateStatus(orderID uint, status string) error
	UpdatePaymentStatus(orderID uint, status string) error
	Count() (int64, error)
}
