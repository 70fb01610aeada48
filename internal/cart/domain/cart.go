package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	catalog "github.com/pcshop/storefront/internal/catalog/domain"
)

var (
	ErrItemNotFound    = errors.New("cart item not found")
	ErrUnavailable     = errors.New("product is not available")
	ErrInvalidQuantity = errors.New("quantity must be a positive number")
)

// Cart is a user's mutable staging area of selected products. One cart per
// user; created lazily on first access and emptied on checkout, the row
// itself persists for reuse.
type Cart struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TableName specifies the table name
func (Cart) TableName() string {
	return "carts"
}

// CartItem is one (cart, product) line. Quantity is always positive; setting
// it to zero deletes the line instead.
type CartItem struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	CartID    uint             `json:"cart_id" gorm:"uniqueIndex:idx_cart_items_cart_product;not null"`
	ProductID uint             `json:"product_id" gorm:"uniqueIndex:idx_cart_items_cart_product;not null"`
	Quantity  int              `json:"quantity" gorm:"not null"`
	Product   *catalog.Product `json:"product,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// TableName specifies the table name
func (CartItem) TableName() string {
	return "cart_items"
}

// TotalPrice is quantity times the product's current discounted price
func (i *CartItem) TotalPrice() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}
	return i.Product.DiscountedPrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Totals holds a cart's derived aggregates. They are recomputed from the
// current items on every read, never stored.
type Totals struct {
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Totals derives the cart aggregates from its loaded items
func (c *Cart) Totals() Totals {
	t := Totals{TotalPrice: decimal.Zero}
	for i := range c.Items {
		t.TotalItems += c.Items[i].Quantity
		t.TotalPrice = t.TotalPrice.Add(c.Items[i].TotalPrice())
	}
	return t
}

// CartRepository defines the contract for cart data access. UpsertItem must
// be atomic at the storage layer; concurrent adds against the same line
// accumulate rather than overwrite.
type CartRepository interface {
	FindOrCreateByUser(userID uint) (*Cart, error)
	FindItemForUser(itemID, userID uint) (*CartItem, error)
	UpsertItem(cartID, productID uint, delta int) (*CartItem, error)
	ClampQuantity(itemID uint, max int) (bool, error)
	SetQuantity(itemID uint, quantity int) error
	DeleteItem(itemID uint) error
}
