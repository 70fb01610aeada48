package command

import (
	"fmt"

	"github.com/pcshop/storefront/internal/order/domain"
)

// UpdatePaymentStatusCommand records the result of a payment attempt
type UpdatePaymentStatusCommand struct {
	OrderID uint
	Status  string
}

// UpdatePaymentStatusHandler handles payment status update command
type UpdatePaymentStatusHandler struct {
	repo domain.OrderRepository
}

// NewUpdatePaymentStatusHandler creates a new update payment status handler
func NewUpdatePaymentStatusHandler(repo domain.OrderRepository) *UpdatePaymentStatusHandler {
	return &UpdatePaymentStatusHandler{repo: repo}
}

// Handle executes the update payment status command
func (h *UpdatePaymentStatusHandler) Handle(cmd UpdatePaymentStatusCommand) error {
	if !domain.ValidPaymentStatus(cmd.Status) {
		return fmt.Errorf("%q: %w", cmd.Status, domain.ErrInvalidStatus)
	}
	return h.repo.UpdatePaymentStatus(cmd.OrderID, cmd.Status)
}
