package query

import (
	"github.com/pcshop/storefront/internal/order/domain"
)

// GetOrderQuery fetches one of the user's orders
type GetOrderQuery struct {
	OrderID uint
	UserID  uint
}

// GetOrderHandler handles get order query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query. The lookup is scoped to the user, so
// another user's order ID behaves exactly like a missing one.
func (h *GetOrderHandler) Handle(query GetOrderQuery) (*domain.Order, error) {
	return h.repo.FindByIDForUser(query.OrderID, query.UserID)
}
