package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcshop/storefront/internal/cart/domain"
	catalog "github.com/pcshop/storefront/internal/catalog/domain"
	"github.com/pcshop/storefront/pkg/auth"
)

// fakeCartRepository is an in-memory CartRepository backing the handler tests
type fakeCartRepository struct {
	mu     sync.Mutex
	carts  map[uint]*domain.Cart
	nextID uint
}

func newFakeCartRepository() *fakeCartRepository {
	return &fakeCartRepository{carts: make(map[uint]*domain.Cart), nextID: 1}
}

func (f *fakeCartRepository) FindOrCreateByUser(userID uint) (*domain.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.carts {
		if c.UserID == userID {
			return c, nil
		}
	}
	cart := &domain.Cart{ID: f.nextID, UserID: userID}
	f.nextID++
	f.carts[cart.ID] = cart
	return cart, nil
}

// FindItemForUser returns a detached copy, like the gorm implementation does,
// so a later DeleteItem cannot shift another line under the returned pointer.
func (f *fakeCartRepository) FindItemForUser(itemID, userID uint) (*domain.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.carts {
		if c.UserID != userID {
			continue
		}
		for i := range c.Items {
			if c.Items[i].ID == itemID {
				item := c.Items[i]
				return &item, nil
			}
		}
	}
	return nil, domain.ErrItemNotFound
}

func (f *fakeCartRepository) UpsertItem(cartID, productID uint, delta int) (*domain.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cart := f.carts[cartID]
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += delta
			return &cart.Items[i], nil
		}
	}
	item := domain.CartItem{ID: f.nextID, CartID: cartID, ProductID: productID, Quantity: delta}
	f.nextID++
	cart.Items = append(cart.Items, item)
	return &cart.Items[len(cart.Items)-1], nil
}

func (f *fakeCartRepository) ClampQuantity(itemID uint, max int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.carts {
		for i := range c.Items {
			if c.Items[i].ID == itemID && c.Items[i].Quantity > max {
				c.Items[i].Quantity = max
				return true, nil
			}
		}
	}
	return false, nil
}

func (f *fakeCartRepository) SetQuantity(itemID uint, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.carts {
		for i := range c.Items {
			if c.Items[i].ID == itemID {
				c.Items[i].Quantity = quantity
				return nil
			}
		}
	}
	return domain.ErrItemNotFound
}

func (f *fakeCartRepository) DeleteItem(itemID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.carts {
		for i := range c.Items {
			if c.Items[i].ID == itemID {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
				return nil
			}
		}
	}
	return domain.ErrItemNotFound
}

// fakeCatalogRepository only serves product lookups
type fakeCatalogRepository struct {
	catalog.CatalogRepository
	products map[uint]*catalog.Product
}

func (f *fakeCatalogRepository) FindProductByID(id uint) (*catalog.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return p, nil
}

// The handler registers its Prometheus collectors on construction, so the
// test router is built exactly once and shared across tests. Tests isolate
// themselves through distinct user IDs.
var (
	setupOnce  sync.Once
	testRouter *mux.Router
)

func cartRouter() *mux.Router {
	setupOnce.Do(func() {
		price := func(s string) decimal.Decimal {
			d, _ := decimal.NewFromString(s)
			return d
		}
		products := &fakeCatalogRepository{products: map[uint]*catalog.Product{
			1: {ID: 1, Name: "RTX 4080", Price: price("1199.99"), Stock: 3, IsAvailable: true},
			2: {ID: 2, Name: "DDR5 RAM", Price: price("89.99"), Stock: 50, IsAvailable: true},
		}}

		handler := NewCartHandler(newFakeCartRepository(), products)
		testRouter = mux.NewRouter()
		handler.RegisterRoutes(testRouter)
	})
	return testRouter
}

func bearerToken(t *testing.T, userID uint) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, fmt.Sprintf("user%d", userID), "customer")
	require.NoError(t, err)
	return "Bearer " + token
}

func doCartRequest(t *testing.T, method, target, token string, body interface{}) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	rec := httptest.NewRecorder()
	cartRouter().ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestCartRequiresAuthentication(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	cartRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartRejectsMalformedToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	cartRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetCartEmpty(t *testing.T) {
	token := bearerToken(t, 101)

	rec, resp := doCartRequest(t, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	var view struct {
		Totals struct {
			TotalItems int `json:"total_items"`
		} `json:"totals"`
	}
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &view))
	assert.Equal(t, 0, view.Totals.TotalItems)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	token := bearerToken(t, 102)

	rec, resp := doCartRequest(t, http.MethodPost, "/api/cart/items", token,
		map[string]interface{}{"product_id": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "RTX 4080 added to cart", resp.Message)

	var result struct {
		Item struct {
			Quantity int `json:"quantity"`
		} `json:"item"`
		Clamped bool `json:"clamped"`
	}
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, 1, result.Item.Quantity)
	assert.False(t, result.Clamped)
}

func TestAddItemExplicitZeroQuantityRejected(t *testing.T) {
	token := bearerToken(t, 109)

	rec, resp := doCartRequest(t, http.MethodPost, "/api/cart/items", token,
		map[string]interface{}{"product_id": 1, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, domain.ErrInvalidQuantity.Error(), resp.Error)
}

func TestAddItemClampedToStock(t *testing.T) {
	token := bearerToken(t, 103)

	rec, resp := doCartRequest(t, http.MethodPost, "/api/cart/items", token,
		map[string]interface{}{"product_id": 1, "quantity": 99})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "Only 3 units of RTX 4080 are available")
}

func TestAddItemUnknownProduct(t *testing.T) {
	token := bearerToken(t, 104)

	rec, resp := doCartRequest(t, http.MethodPost, "/api/cart/items", token,
		map[string]interface{}{"product_id": 999})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Product not found", resp.Error)
}

func TestUpdateItemNotFound(t *testing.T) {
	token := bearerToken(t, 105)

	rec, resp := doCartRequest(t, http.MethodPut, "/api/cart/items/9999", token,
		map[string]interface{}{"quantity": 2})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cart item not found", resp.Error)
}

func TestUpdateItemInvalidID(t *testing.T) {
	token := bearerToken(t, 105)

	rec, resp := doCartRequest(t, http.MethodPut, "/api/cart/items/not-a-number", token,
		map[string]interface{}{"quantity": 2})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid item ID", resp.Error)
}

func TestRemoveItemAfterAdd(t *testing.T) {
	token := bearerToken(t, 106)

	rec, resp := doCartRequest(t, http.MethodPost, "/api/cart/items", token,
		map[string]interface{}{"product_id": 2, "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Item struct {
			ID uint `json:"id"`
		} `json:"item"`
	}
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &result))
	require.NotZero(t, result.Item.ID)

	rec, resp = doCartRequest(t, http.MethodDelete, fmt.Sprintf("/api/cart/items/%d", result.Item.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "removed from cart")

	rec, resp = doCartRequest(t, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view struct {
		Totals struct {
			TotalItems int `json:"total_items"`
		} `json:"totals"`
	}
	raw, err = json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &view))
	assert.Equal(t, 0, view.Totals.TotalItems)
}

func TestUsersCannotTouchOtherCarts(t *testing.T) {
	owner := bearerToken(t, 107)
	intruder := bearerToken(t, 108)

	rec, resp := doCartRequest(t, http.MethodPost, "/api/cart/items", owner,
		map[string]interface{}{"product_id": 2, "quantity": 1})
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Item struct {
			ID uint `json:"id"`
		} `json:"item"`
	}
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &result))

	rec, resp = doCartRequest(t, http.MethodDelete, fmt.Sprintf("/api/cart/items/%d", result.Item.ID), intruder, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cart item not found", resp.Error)
}
