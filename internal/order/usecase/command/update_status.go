package command

import (
	"fmt"

	"github.com/pcshop/storefront/internal/order/domain"
)

// UpdateStatusCommand moves an order to a new fulfillment status
type UpdateStatusCommand struct {
	OrderID uint
	Status  string
}

// UpdateStatusHandler handles order status update command
type UpdateStatusHandler struct {
	repo domain.OrderRepository
}

// NewUpdateStatusHandler creates a new update status handler
func NewUpdateStatusHandler(repo domain.OrderRepository) *UpdateStatusHandler {
	return &UpdateStatusHandler{repo: repo}
}

// Handle executes the update status command
func (h *UpdateStatusHandler) Handle(cmd UpdateStatusCommand) error {
	if !domain.ValidOrderStatus(cmd.Status) {
		return fmt.Errorf("%q: %w", cmd.Status, domain.ErrInvalidStatus)
	}
	return h.repo.UpdateStatus(cmd.OrderID, cmd.Status)
}
