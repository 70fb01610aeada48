package query

import (
	"fmt"

	"github.com/pcshop/storefront/internal/cart/domain"
)

// GetCartQuery fetches the user's cart
type GetCartQuery struct {
	UserID uint
}

// CartView is the cart with its derived totals
type CartView struct {
	Cart   *domain.Cart  `json:"cart"`
	Totals domain.Totals `json:"totals"`
}

// GetCartHandler handles get cart query
type GetCartHandler struct {
	carts domain.CartRepository
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(carts domain.CartRepository) *GetCartHandler {
	return &GetCartHandler{carts: carts}
}

// Handle executes the get cart query. Totals are recomputed from the current
// line items on every read, never stored.
func (h *GetCartHandler) Handle(query GetCartQuery) (*CartView, error) {
	cart, err := h.carts.FindOrCreateByUser(query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	return &CartView{
		Cart:   cart,
		Totals: cart.Totals(),
	}, nil
}
