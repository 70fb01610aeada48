package query

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cart "github.com/pcshop/storefront/internal/cart/domain"
	catalog "github.com/pcshop/storefront/internal/catalog/domain"
	"github.com/pcshop/storefront/internal/order/domain"
	user "github.com/pcshop/storefront/internal/user/domain"
)

type stubCartRepository struct {
	cart.CartRepository
	cart *cart.Cart
}

func (s *stubCartRepository) FindOrCreateByUser(userID uint) (*cart.Cart, error) {
	return s.cart, nil
}

type stubUserRepository struct {
	user.UserRepository
	user    *user.User
	profile *user.UserProfile
}

func (s *stubUserRepository) FindByID(id uint) (*user.User, error) {
	return s.user, nil
}

func (s *stubUserRepository) FindOrCreateProfile(userID uint) (*user.UserProfile, error) {
	return s.profile, nil
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestGetCheckoutPrefill(t *testing.T) {
	gpu := &catalog.Product{ID: 1, Name: "RTX 4080", Price: dec("100.00"), Stock: 5, IsAvailable: true}
	userCart := &cart.Cart{
		ID:     1,
		UserID: 7,
		Items:  []cart.CartItem{{ID: 10, CartID: 1, ProductID: 1, Quantity: 2, Product: gpu}},
	}

	handler := NewGetCheckoutHandler(
		&stubCartRepository{cart: userCart},
		&stubUserRepository{
			user: &user.User{ID: 7, Username: "asha", Email: "asha@example.com", FullName: "Asha Rao"},
			profile: &user.UserProfile{
				UserID: 7, Phone: "9876543210", Address: "12 MG Road",
				City: "Bengaluru", State: "Karnataka", Pincode: "560001",
			},
		},
	)

	view, err := handler.Handle(GetCheckoutQuery{UserID: 7})
	require.NoError(t, err)

	assert.Equal(t, "Asha Rao", view.Prefill.FullName)
	assert.Equal(t, "asha@example.com", view.Prefill.Email)
	assert.Equal(t, "Bengaluru", view.Prefill.City)
	assert.Equal(t, 2, view.Totals.TotalItems)
	assert.True(t, view.Totals.TotalPrice.Equal(dec("200.00")))
}

func TestGetCheckoutFallsBackToUsername(t *testing.T) {
	gpu := &catalog.Product{ID: 1, Name: "RTX 4080", Price: dec("100.00"), Stock: 5, IsAvailable: true}
	userCart := &cart.Cart{
		ID:     1,
		UserID: 7,
		Items:  []cart.CartItem{{ID: 10, CartID: 1, ProductID: 1, Quantity: 1, Product: gpu}},
	}

	handler := NewGetCheckoutHandler(
		&stubCartRepository{cart: userCart},
		&stubUserRepository{
			user:    &user.User{ID: 7, Username: "asha", Email: "asha@example.com"},
			profile: &user.UserProfile{UserID: 7},
		},
	)

	view, err := handler.Handle(GetCheckoutQuery{UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, "asha", view.Prefill.FullName)
}

func TestGetCheckoutEmptyCart(t *testing.T) {
	handler := NewGetCheckoutHandler(
		&stubCartRepository{cart: &cart.Cart{ID: 1, UserID: 7}},
		&stubUserRepository{user: &user.User{ID: 7, Username: "asha"}},
	)

	_, err := handler.Handle(GetCheckoutQuery{UserID: 7})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}
