package command

import (
	"fmt"

	"github.com/pcshop/storefront/internal/order/domain"
)

// Payment methods accepted at checkout
const (
	PaymentMethodCOD  = "cod"
	PaymentMethodCard = "card"
	PaymentMethodUPI  = "upi"
)

// PlaceOrderCommand converts the user's cart into an order
type PlaceOrderCommand struct {
	UserID        uint
	FullName      string
	Email         string
	Phone         string
	Address       string
	City          string
	State         string
	Pincode       string
	PaymentMethod string
}

// PlaceOrderHandler handles place order command
type PlaceOrderHandler struct {
	repo domain.OrderRepository
}

// NewPlaceOrderHandler creates a new place order handler
func NewPlaceOrderHandler(repo domain.OrderRepository) *PlaceOrderHandler {
	return &PlaceOrderHandler{repo: repo}
}

// Handle executes the place order command. The repository runs the whole
// conversion in one transaction, so a stock shortfall on any line leaves both
// the cart and the product stock untouched.
func (h *PlaceOrderHandler) Handle(cmd PlaceOrderCommand) (*domain.Order, error) {
	fields := map[string]string{}
	required := []struct {
		name  string
		value string
	}{
		{"full_name", cmd.FullName},
		{"email", cmd.Email},
		{"phone", cmd.Phone},
		{"address", cmd.Address},
		{"city", cmd.City},
		{"state", cmd.State},
		{"pincode", cmd.Pincode},
	}
	for _, f := range required {
		if f.value == "" {
			fields[f.name] = "This field is required"
		}
	}

	method := cmd.PaymentMethod
	if method == "" {
		method = PaymentMethodCOD
	}
	if method != PaymentMethodCOD && method != PaymentMethodCard && method != PaymentMethodUPI {
		fields["payment_method"] = fmt.Sprintf("Unsupported payment method %q", cmd.PaymentMethod)
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	order := &domain.Order{
		UserID:        cmd.UserID,
		FullName:      cmd.FullName,
		Email:         cmd.Email,
		Phone:         cmd.Phone,
		Address:       cmd.Address,
		City:          cmd.City,
		State:         cmd.State,
		Pincode:       cmd.Pincode,
		PaymentMethod: method,
		PaymentStatus: domain.PaymentPending,
		OrderStatus:   domain.StatusProcessing,
	}

	if err := h.repo.PlaceOrder(order); err != nil {
		return nil, err
	}

	return order, nil
}
