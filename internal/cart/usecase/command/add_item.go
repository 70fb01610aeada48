package command

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pcshop/storefront/internal/cart/domain"
	catalog "github.com/pcshop/storefront/internal/catalog/domain"
)

// AddItemCommand adds a product to the user's cart
type AddItemCommand struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

// AddItemResult reports the outcome of an add. Clamped is set when the
// effective quantity was reduced to the available stock; callers must be able
// to tell that apart from a plain success.
type AddItemResult struct {
	Item       *domain.CartItem `json:"item"`
	Clamped    bool             `json:"clamped"`
	Message    string           `json:"message"`
	TotalItems int              `json:"cart_items"`
	TotalPrice decimal.Decimal  `json:"cart_total"`
}

// AddItemHandler handles add item command
type AddItemHandler struct {
	carts   domain.CartRepository
	catalog catalog.CatalogRepository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(carts domain.CartRepository, catalogRepo catalog.CatalogRepository) *AddItemHandler {
	return &AddItemHandler{carts: carts, catalog: catalogRepo}
}

// Handle executes the add item command
func (h *AddItemHandler) Handle(cmd AddItemCommand) (*AddItemResult, error) {
	if cmd.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := h.catalog.FindProductByID(cmd.ProductID)
	if err != nil {
		return nil, err
	}

	if !product.Purchasable() {
		return nil, fmt.Errorf("%s is currently out of stock: %w", product.Name, domain.ErrUnavailable)
	}

	cart, err := h.carts.FindOrCreateByUser(cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	item, err := h.carts.UpsertItem(cart.ID, product.ID, cmd.Quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}

	result := &AddItemResult{
		Message: fmt.Sprintf("%s added to cart", product.Name),
	}

	if item.Quantity > product.Stock {
		if _, err := h.carts.ClampQuantity(item.ID, product.Stock); err != nil {
			return nil, fmt.Errorf("failed to clamp quantity: %w", err)
		}
		item.Quantity = product.Stock
		result.Clamped = true
		result.Message = fmt.Sprintf(
			"Only %d units of %s are available. Your cart has been updated.",
			product.Stock, product.Name,
		)
	}

	result.Item = item

	cart, err = h.carts.FindOrCreateByUser(cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload cart: %w", err)
	}
	totals := cart.Totals()
	result.TotalItems = totals.TotalItems
	result.TotalPrice = totals.TotalPrice

	return result, nil
}
