package query

import (
	"github.com/pcshop/storefront/internal/order/domain"
)

// ListOrdersQuery fetches the user's order history, newest first
type ListOrdersQuery struct {
	UserID uint
}

// ListOrdersHandler handles list orders query
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(query ListOrdersQuery) ([]domain.Order, error) {
	return h.repo.FindByUserID(query.UserID)
}

// ListAllOrdersQuery fetches all orders with pagination (admin)
type ListAllOrdersQuery struct {
	Limit  int
	Offset int
}

// ListAllOrdersHandler handles list all orders query
type ListAllOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListAllOrdersHandler creates a new list all orders handler
func NewListAllOrdersHandler(repo domain.OrderRepository) *ListAllOrdersHandler {
	return &ListAllOrdersHandler{repo: repo}
}

// Handle executes the list all orders query
func (h *ListAllOrdersHandler) Handle(query ListAllOrdersQuery) ([]domain.Order, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}
	return h.repo.FindAll(limit, query.Offset)
}
