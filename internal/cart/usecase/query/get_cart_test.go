package query

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcshop/storefront/internal/cart/domain"
	catalog "github.com/pcshop/storefront/internal/catalog/domain"
)

// stubCartRepository returns a prebuilt cart from FindOrCreateByUser
type stubCartRepository struct {
	domain.CartRepository
	cart *domain.Cart
}

func (s *stubCartRepository) FindOrCreateByUser(userID uint) (*domain.Cart, error) {
	return s.cart, nil
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestGetCartRecomputesTotals(t *testing.T) {
	gpu := &catalog.Product{
		ID:                 1,
		Name:               "RTX 4080",
		Price:              dec("100.00"),
		DiscountPercentage: dec("10"),
		Stock:              5,
		IsAvailable:        true,
	}
	ssd := &catalog.Product{
		ID:          2,
		Name:        "980 Pro",
		Price:       dec("50.00"),
		Stock:       5,
		IsAvailable: true,
	}

	cart := &domain.Cart{
		ID:     1,
		UserID: 7,
		Items: []domain.CartItem{
			{ID: 10, CartID: 1, ProductID: 1, Quantity: 3, Product: gpu},
			{ID: 11, CartID: 1, ProductID: 2, Quantity: 2, Product: ssd},
		},
	}

	handler := NewGetCartHandler(&stubCartRepository{cart: cart})
	view, err := handler.Handle(GetCartQuery{UserID: 7})
	require.NoError(t, err)

	// 3 x 90.00 discounted plus 2 x 50.00
	assert.Equal(t, 5, view.Totals.TotalItems)
	assert.True(t, view.Totals.TotalPrice.Equal(dec("370.00")))

	// a price drop shows up on the next read without touching the cart
	gpu.Price = dec("80.00")
	view, err = handler.Handle(GetCartQuery{UserID: 7})
	require.NoError(t, err)
	assert.True(t, view.Totals.TotalPrice.Equal(dec("316.00")))
}

func TestGetCartEmpty(t *testing.T) {
	handler := NewGetCartHandler(&stubCartRepository{cart: &domain.Cart{ID: 1, UserID: 7}})
	view, err := handler.Handle(GetCartQuery{UserID: 7})
	require.NoError(t, err)

	assert.Equal(t, 0, view.Totals.TotalItems)
	assert.True(t, view.Totals.TotalPrice.IsZero())
}
