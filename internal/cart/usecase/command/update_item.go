package command

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pcshop/storefront/internal/cart/domain"
)

// UpdateItemCommand sets the quantity of a cart item
type UpdateItemCommand struct {
	UserID   uint
	ItemID   uint
	Quantity int
}

// UpdateItemResult reports the item and cart totals after the change. Removed
// is set when a non-positive quantity deleted the line.
type UpdateItemResult struct {
	Removed    bool            `json:"removed"`
	Clamped    bool            `json:"clamped"`
	ItemTotal  decimal.Decimal `json:"item_total"`
	TotalItems int             `json:"cart_items"`
	TotalPrice decimal.Decimal `json:"cart_total"`
}

// UpdateItemHandler handles update item command
type UpdateItemHandler struct {
	carts domain.CartRepository
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(carts domain.CartRepository) *UpdateItemHandler {
	return &UpdateItemHandler{carts: carts}
}

// Handle executes the update item command. Quantities above the product's
// stock are clamped the same way adds are; zero or negative removes the line.
func (h *UpdateItemHandler) Handle(cmd UpdateItemCommand) (*UpdateItemResult, error) {
	item, err := h.carts.FindItemForUser(cmd.ItemID, cmd.UserID)
	if err != nil {
		return nil, err
	}

	result := &UpdateItemResult{}

	if cmd.Quantity <= 0 {
		if err := h.carts.DeleteItem(item.ID); err != nil {
			return nil, fmt.Errorf("failed to remove item: %w", err)
		}
		result.Removed = true
	} else {
		effective := cmd.Quantity
		if item.Product != nil && effective > item.Product.Stock {
			effective = item.Product.Stock
			result.Clamped = true
		}
		if effective <= 0 {
			if err := h.carts.DeleteItem(item.ID); err != nil {
				return nil, fmt.Errorf("failed to remove item: %w", err)
			}
			result.Removed = true
		} else {
			if err := h.carts.SetQuantity(item.ID, effective); err != nil {
				return nil, fmt.Errorf("failed to update quantity: %w", err)
			}
			item.Quantity = effective
			result.ItemTotal = item.TotalPrice()
		}
	}

	cart, err := h.carts.FindOrCreateByUser(cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload cart: %w", err)
	}
	totals := cart.Totals()
	result.TotalItems = totals.TotalItems
	result.TotalPrice = totals.TotalPrice

	return result, nil
}
