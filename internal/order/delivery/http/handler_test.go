package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cart "github.com/pcshop/storefront/internal/cart/domain"
	"github.com/pcshop/storefront/internal/order/domain"
	user "github.com/pcshop/storefront/internal/user/domain"
	"github.com/pcshop/storefront/pkg/auth"
)

// fakeOrderRepository lets each test steer PlaceOrder through a shared
// handler instance
type fakeOrderRepository struct {
	domain.OrderRepository
	mu       sync.Mutex
	placeErr error
	placed   int
}

func (f *fakeOrderRepository) setPlaceErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.placeErr = err
}

func (f *fakeOrderRepository) PlaceOrder(order *domain.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.placeErr != nil {
		return f.placeErr
	}
	f.placed++
	order.ID = uint(f.placed)
	order.Items = []domain.OrderItem{
		{ID: 1, OrderID: order.ID, ProductID: 1, ProductName: "RTX 4080", Price: dec("90.00"), Quantity: 1},
	}
	order.TotalPrice = dec("90.00")
	return nil
}

type fakeCartRepository struct {
	cart.CartRepository
}

type fakeUserRepository struct {
	user.UserRepository
}

// The handler registers prometheus collectors on construction, so the router
// and the steerable repository are shared across tests.
var (
	setupOnce  sync.Once
	testRouter *mux.Router
	orderRepo  *fakeOrderRepository
)

func orderRouter() (*mux.Router, *fakeOrderRepository) {
	setupOnce.Do(func() {
		orderRepo = &fakeOrderRepository{}
		handler := NewOrderHandler(orderRepo, &fakeCartRepository{}, &fakeUserRepository{}, nil)
		testRouter = mux.NewRouter()
		handler.RegisterRoutes(testRouter)
	})
	return testRouter, orderRepo
}

func checkoutBody() map[string]interface{} {
	return map[string]interface{}{
		"full_name": "Asha Rao",
		"email":     "asha@example.com",
		"phone":     "9876543210",
		"address":   "12 MG Road",
		"city":      "Bengaluru",
		"state":     "Karnataka",
		"pincode":   "560001",
	}
}

func placeOrder(t *testing.T, body map[string]interface{}) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	router, _ := orderRouter()
	token, err := auth.GenerateToken(7, "asha", "customer")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", &buf)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestPlaceOrderCreated(t *testing.T) {
	_, repo := orderRouter()
	repo.setPlaceErr(nil)

	rec, resp := placeOrder(t, checkoutBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Your order has been placed successfully", resp.Message)
}

func TestPlaceOrderValidationErrorsPerField(t *testing.T) {
	_, repo := orderRouter()
	repo.setPlaceErr(nil)

	body := checkoutBody()
	body["full_name"] = ""
	body["pincode"] = ""

	rec, resp := placeOrder(t, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Please correct the highlighted fields", resp.Error)

	var data struct {
		Fields map[string]string `json:"fields"`
	}
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &data))
	assert.Contains(t, data.Fields, "full_name")
	assert.Contains(t, data.Fields, "pincode")
}

func TestPlaceOrderRepositoryFailureIsGeneric(t *testing.T) {
	_, repo := orderRouter()
	repo.setPlaceErr(errors.New("failed to create order: pq: connection refused"))
	defer repo.setPlaceErr(nil)

	rec, resp := placeOrder(t, checkoutBody())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, resp.Success)

	// The raw cause stays in the log, never in the body
	assert.Equal(t, "Request failed", resp.Error)
	assert.NotContains(t, resp.Error, "pq:")
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	_, repo := orderRouter()
	repo.setPlaceErr(domain.ErrEmptyCart)
	defer repo.setPlaceErr(nil)

	rec, resp := placeOrder(t, checkoutBody())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Your cart is empty", resp.Error)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	_, repo := orderRouter()
	repo.setPlaceErr(domain.ErrInsufficientStock)
	defer repo.setPlaceErr(nil)

	rec, resp := placeOrder(t, checkoutBody())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.ErrInsufficientStock.Error(), resp.Error)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}
