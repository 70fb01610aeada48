package command

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcshop/storefront/internal/order/domain"
)

// fakeOrderRepository snapshots a configured set of cart lines the way the
// real transaction does
type fakeOrderRepository struct {
	domain.OrderRepository
	lines  []domain.OrderItem
	placed []*domain.Order
	err    error
}

func (f *fakeOrderRepository) PlaceOrder(order *domain.Order) error {
	if f.err != nil {
		return f.err
	}
	if len(f.lines) == 0 {
		return domain.ErrEmptyCart
	}
	order.ID = uint(len(f.placed) + 1)
	order.Items = append(order.Items, f.lines...)
	order.TotalPrice = decimal.Zero
	for i := range order.Items {
		order.TotalPrice = order.TotalPrice.Add(order.Items[i].TotalPrice())
	}
	f.placed = append(f.placed, order)
	return nil
}

func shippingCommand(userID uint) PlaceOrderCommand {
	return PlaceOrderCommand{
		UserID:   userID,
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		Address:  "12 MG Road",
		City:     "Bengaluru",
		State:    "Karnataka",
		Pincode:  "560001",
	}
}

func TestPlaceOrder(t *testing.T) {
	repo := &fakeOrderRepository{
		lines: []domain.OrderItem{
			{ProductID: 1, ProductName: "RTX 4080", Price: dec("90.00"), Quantity: 3},
			{ProductID: 2, ProductName: "980 Pro", Price: dec("50.00"), Quantity: 2},
		},
	}
	handler := NewPlaceOrderHandler(repo)

	order, err := handler.Handle(shippingCommand(7))
	require.NoError(t, err)

	assert.Equal(t, uint(7), order.UserID)
	assert.Equal(t, PaymentMethodCOD, order.PaymentMethod)
	assert.Equal(t, domain.PaymentPending, order.PaymentStatus)
	assert.Equal(t, domain.StatusProcessing, order.OrderStatus)
	assert.Len(t, order.Items, 2)
	assert.True(t, order.TotalPrice.Equal(dec("370.00")))
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	handler := NewPlaceOrderHandler(&fakeOrderRepository{})

	_, err := handler.Handle(shippingCommand(7))
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	handler := NewPlaceOrderHandler(&fakeOrderRepository{err: domain.ErrInsufficientStock})

	_, err := handler.Handle(shippingCommand(7))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestPlaceOrderMissingShippingFields(t *testing.T) {
	repo := &fakeOrderRepository{
		lines: []domain.OrderItem{{ProductID: 1, ProductName: "RTX 4080", Price: dec("90.00"), Quantity: 1}},
	}
	handler := NewPlaceOrderHandler(repo)

	tests := []struct {
		name   string
		field  string
		mutate func(*PlaceOrderCommand)
	}{
		{"missing full name", "full_name", func(c *PlaceOrderCommand) { c.FullName = "" }},
		{"missing email", "email", func(c *PlaceOrderCommand) { c.Email = "" }},
		{"missing phone", "phone", func(c *PlaceOrderCommand) { c.Phone = "" }},
		{"missing address", "address", func(c *PlaceOrderCommand) { c.Address = "" }},
		{"missing city", "city", func(c *PlaceOrderCommand) { c.City = "" }},
		{"missing state", "state", func(c *PlaceOrderCommand) { c.State = "" }},
		{"missing pincode", "pincode", func(c *PlaceOrderCommand) { c.Pincode = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := shippingCommand(7)
			tt.mutate(&cmd)
			_, err := handler.Handle(cmd)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, tt.field)
			assert.Empty(t, repo.placed)
		})
	}
}

func TestPlaceOrderCollectsAllFieldErrors(t *testing.T) {
	handler := NewPlaceOrderHandler(&fakeOrderRepository{})

	cmd := shippingCommand(7)
	cmd.FullName = ""
	cmd.Pincode = ""
	cmd.PaymentMethod = "bitcoin"

	_, err := handler.Handle(cmd)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 3)
	assert.Contains(t, vErr.Fields, "full_name")
	assert.Contains(t, vErr.Fields, "pincode")
	assert.Contains(t, vErr.Fields, "payment_method")
	assert.Equal(t, "invalid checkout fields: full_name, payment_method, pincode", vErr.Error())
}

func TestPlaceOrderPaymentMethods(t *testing.T) {
	repo := &fakeOrderRepository{
		lines: []domain.OrderItem{{ProductID: 1, ProductName: "RTX 4080", Price: dec("90.00"), Quantity: 1}},
	}
	handler := NewPlaceOrderHandler(repo)

	cmd := shippingCommand(7)
	cmd.PaymentMethod = PaymentMethodUPI
	order, err := handler.Handle(cmd)
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodUPI, order.PaymentMethod)

	cmd.PaymentMethod = "bitcoin"
	_, err = handler.Handle(cmd)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "payment_method")
}

func TestUpdateStatus(t *testing.T) {
	repo := &recordingStatusRepository{}
	handler := NewUpdateStatusHandler(repo)

	require.NoError(t, handler.Handle(UpdateStatusCommand{OrderID: 1, Status: domain.StatusShipped}))
	assert.Equal(t, domain.StatusShipped, repo.status)

	err := handler.Handle(UpdateStatusCommand{OrderID: 1, Status: "lost"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestUpdatePaymentStatus(t *testing.T) {
	repo := &recordingStatusRepository{}
	handler := NewUpdatePaymentStatusHandler(repo)

	require.NoError(t, handler.Handle(UpdatePaymentStatusCommand{OrderID: 1, Status: domain.PaymentPaid}))
	assert.Equal(t, domain.PaymentPaid, repo.paymentStatus)

	err := handler.Handle(UpdatePaymentStatusCommand{OrderID: 1, Status: "maybe"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

type recordingStatusRepository struct {
	domain.OrderRepository
	status        string
	paymentStatus string
}

func (r *recordingStatusRepository) UpdateStatus(orderID uint, status string) error {
	r.status = status
	return nil
}

func (r *recordingStatusRepository) UpdatePaymentStatus(orderID uint, status string) error {
	r.paymentStatus = status
	return nil
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}
