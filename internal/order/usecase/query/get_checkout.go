package query

import (
	"fmt"

	cart "github.com/pcshop/storefront/internal/cart/domain"
	"github.com/pcshop/storefront/internal/order/domain"
	user "github.com/pcshop/storefront/internal/user/domain"
)

// GetCheckoutQuery fetches what the checkout page needs: the cart contents
// and the shipping form prefilled from the user's profile
type GetCheckoutQuery struct {
	UserID uint
}

// CheckoutPrefill are the shipping form's initial values
type CheckoutPrefill struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

// CheckoutView is the checkout page payload
type CheckoutView struct {
	Cart    *cart.Cart      `json:"cart"`
	Totals  cart.Totals     `json:"totals"`
	Prefill CheckoutPrefill `json:"prefill"`
}

// GetCheckoutHandler handles get checkout query
type GetCheckoutHandler struct {
	cart  cart.CartRepository
	users user.UserRepository
}

// NewGetCheckoutHandler creates a new get checkout handler
func NewGetCheckoutHandler(cartRepo cart.CartRepository, users user.UserRepository) *GetCheckoutHandler {
	return &GetCheckoutHandler{cart: cartRepo, users: users}
}

// Handle executes the get checkout query. An empty cart is an error; there is
// nothing to check out.
func (h *GetCheckoutHandler) Handle(query GetCheckoutQuery) (*CheckoutView, error) {
	userCart, err := h.cart.FindOrCreateByUser(query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(userCart.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	account, err := h.users.FindByID(query.UserID)
	if err != nil {
		return nil, err
	}

	prefill := CheckoutPrefill{
		FullName: account.FullName,
		Email:    account.Email,
	}
	if prefill.FullName == "" {
		prefill.FullName = account.Username
	}

	if profile, err := h.users.FindOrCreateProfile(query.UserID); err == nil {
		prefill.Phone = profile.Phone
		prefill.Address = profile.Address
		prefill.City = profile.City
		prefill.State = profile.State
		prefill.Pincode = profile.Pincode
	}

	return &CheckoutView{
		Cart:    userCart,
		Totals:  userCart.Totals(),
		Prefill: prefill,
	}, nil
}
