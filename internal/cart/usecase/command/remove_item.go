package command

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pcshop/storefront/internal/cart/domain"
)

// RemoveItemCommand removes a cart item
type RemoveItemCommand struct {
	UserID uint
	ItemID uint
}

// RemoveItemResult reports the cart totals after removal
type RemoveItemResult struct {
	Message    string          `json:"message"`
	TotalItems int             `json:"cart_items"`
	TotalPrice decimal.Decimal `json:"cart_total"`
}

// RemoveItemHandler handles remove item command
type RemoveItemHandler struct {
	carts domain.CartRepository
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(carts domain.CartRepository) *RemoveItemHandler {
	return &RemoveItemHandler{carts: carts}
}

// Handle executes the remove item command
func (h *RemoveItemHandler) Handle(cmd RemoveItemCommand) (*RemoveItemResult, error) {
	item, err := h.carts.FindItemForUser(cmd.ItemID, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := h.carts.DeleteItem(item.ID); err != nil {
		return nil, fmt.Errorf("failed to remove item: %w", err)
	}

	message := "Item removed from cart"
	if item.Product != nil {
		message = fmt.Sprintf("%s removed from cart", item.Product.Name)
	}

	cart, err := h.carts.FindOrCreateByUser(cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload cart: %w", err)
	}
	totals := cart.Totals()

	return &RemoveItemResult{
		Message:    message,
		TotalItems: totals.TotalItems,
		TotalPrice: totals.TotalPrice,
	}, nil
}
