package command

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcshop/storefront/internal/cart/domain"
	catalog "github.com/pcshop/storefront/internal/catalog/domain"
)

// fakeCartRepository is an in-memory CartRepository for usecase tests
type fakeCartRepository struct {
	carts  map[uint]*domain.Cart
	nextID uint
}

func newFakeCartRepository() *fakeCartRepository {
	return &fakeCartRepository{carts: make(map[uint]*domain.Cart), nextID: 1}
}

func (f *fakeCartRepository) FindOrCreateByUser(userID uint) (*domain.Cart, error) {
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

// FindItemForUser returns a detached copy, like the gorm implementation does.
// A pointer into the Items slice would alias a different line once DeleteItem
// shifts the backing array.
func (f *fakeCartRepository) FindItemForUser(itemID, userID uint) (*domain.CartItem, error) {
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

// attachProducts makes the fake behave like the gorm preload by pointing each
// item at its product
func (f *fakeCartRepository) attachProducts(products map[uint]*catalog.Product) {
	for _, c := range f.carts {
		for i := range c.Items {
			c.Items[i].Product = products[c.Items[i].ProductID]
		}
	}
}

// fakeCatalogRepository only serves product lookups; everything else is
// unused by the cart usecases
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

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newTestProduct(id uint, name string, priceStr string, stock int) *catalog.Product {
	return &catalog.Product{
		ID:          id,
		Name:        name,
		Price:       price(priceStr),
		Stock:       stock,
		IsAvailable: true,
	}
}

func TestAddItem(t *testing.T) {
	gpu := newTestProduct(1, "RTX 4080", "1199.99", 3)

	carts := newFakeCartRepository()
	products := &fakeCatalogRepository{products: map[uint]*catalog.Product{1: gpu}}
	handler := NewAddItemHandler(carts, products)

	result, err := handler.Handle(AddItemCommand{UserID: 7, ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	assert.False(t, result.Clamped)
	assert.Equal(t, "RTX 4080 added to cart", result.Message)
	assert.Equal(t, 2, result.Item.Quantity)

	carts.attachProducts(products.products)
	cart, _ := carts.FindOrCreateByUser(7)
	totals := cart.Totals()
	assert.Equal(t, 2, totals.TotalItems)
	assert.True(t, totals.TotalPrice.Equal(price("2399.98")))
}

func TestAddItemClampsToStock(t *testing.T) {
	gpu := newTestProduct(1, "RTX 4080", "1199.99", 3)

	carts := newFakeCartRepository()
	products := &fakeCatalogRepository{products: map[uint]*catalog.Product{1: gpu}}
	handler := NewAddItemHandler(carts, products)

	result, err := handler.Handle(AddItemCommand{UserID: 7, ProductID: 1, Quantity: 5})
	require.NoError(t, err)

	assert.True(t, result.Clamped)
	assert.Equal(t, 3, result.Item.Quantity)
	assert.Contains(t, result.Message, "Only 3 units of RTX 4080 are available")
}

func TestAddItemAccumulatesThenClamps(t *testing.T) {
	gpu := newTestProduct(1, "RTX 4080", "1199.99", 3)

	carts := newFakeCartRepository()
	products := &fakeCatalogRepository{products: map[uint]*catalog.Product{1: gpu}}
	handler := NewAddItemHandler(carts, products)

	first, err := handler.Handle(AddItemCommand{UserID: 7, ProductID: 1, Quantity: 2})
	require.NoError(t, err)
	assert.False(t, first.Clamped)

	// 2 + 2 exceeds the 3 in stock, so the line lands on exactly 3
	second, err := handler.Handle(AddItemCommand{UserID: 7, ProductID: 1, Quantity: 2})
	require.NoError(t, err)
	assert.True(t, second.Clamped)
	assert.Equal(t, 3, second.Item.Quantity)
}

func TestAddItemOutOfStock(t *testing.T) {
	gpu := newTestProduct(1, "RTX 4080", "1199.99", 0)

	carts := newFakeCartRepository()
	products := &fakeCatalogRepository{products: map[uint]*catalog.Product{1: gpu}}
	handler := NewAddItemHandler(carts, products)

	_, err := handler.Handle(AddItemCommand{UserID: 7, ProductID: 1, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestAddItemUnavailableProduct(t *testing.T) {
	gpu := newTestProduct(1, "RTX 4080", "1199.99", 10)
	gpu.IsAvailable = false

	carts := newFakeCartRepository()
	products := &fakeCatalogRepository{products: map[uint]*catalog.Product{1: gpu}}
	handler := NewAddItemHandler(carts, products)

	_, err := handler.Handle(AddItemCommand{UserID: 7, ProductID: 1, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestAddItemInvalidQuantity(t *testing.T) {
	carts := newFakeCartRepository()
	products := &fakeCatalogRepository{products: map[uint]*catalog.Product{}}
	handler := NewAddItemHandler(carts, products)

	_, err := handler.Handle(AddItemCommand{UserID: 7, ProductID: 1, Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	carts := newFakeCartRepository()
	products := &fakeCatalogRepository{products: map[uint]*catalog.Product{}}
	handler := NewAddItemHandler(carts, products)

	_, err := handler.Handle(AddItemCommand{UserID: 7, ProductID: 99, Quantity: 1})
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}
