package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcshop/storefront/internal/cart/domain"
	catalog "github.com/pcshop/storefront/internal/catalog/domain"
)

func seedCartWithItem(t *testing.T, carts *fakeCartRepository, products map[uint]*catalog.Product, userID, productID uint, quantity int) *domain.CartItem {
	t.Helper()
	cart, err := carts.FindOrCreateByUser(userID)
	require.NoError(t, err)
	item, err := carts.UpsertItem(cart.ID, productID, quantity)
	require.NoError(t, err)
	carts.attachProducts(products)
	return item
}

func TestUpdateItemSetsQuantity(t *testing.T) {
	gpu := newTestProduct(1, "RTX 4080", "100.00", 10)
	products := map[uint]*catalog.Product{1: gpu}

	carts := newFakeCartRepository()
	item := seedCartWithItem(t, carts, products, 7, 1, 2)

	handler := NewUpdateItemHandler(carts)
	result, err := handler.Handle(UpdateItemCommand{UserID: 7, ItemID: item.ID, Quantity: 4})
	require.NoError(t, err)

	assert.False(t, result.Removed)
	assert.False(t, result.Clamped)
	assert.True(t, result.ItemTotal.Equal(price("400.00")))
	assert.Equal(t, 4, result.TotalItems)
	assert.True(t, result.TotalPrice.Equal(price("400.00")))
}

func TestUpdateItemClampsToStock(t *testing.T) {
	gpu := newTestProduct(1, "RTX 4080", "100.00", 3)
	products := map[uint]*catalog.Product{1: gpu}

	carts := newFakeCartRepository()
	item := seedCartWithItem(t, carts, products, 7, 1, 2)

	handler := NewUpdateItemHandler(carts)
	result, err := handler.Handle(UpdateItemCommand{UserID: 7, ItemID: item.ID, Quantity: 9})
	require.NoError(t, err)

	assert.True(t, result.Clamped)
	assert.Equal(t, 3, result.TotalItems)
	assert.True(t, result.ItemTotal.Equal(price("300.00")))
}

func TestUpdateItemZeroRemovesLine(t *testing.T) {
	gpu := newTestProduct(1, "RTX 4080", "100.00", 3)
	products := map[uint]*catalog.Product{1: gpu}

	carts := newFakeCartRepository()
	item := seedCartWithItem(t, carts, products, 7, 1, 2)

	handler := NewUpdateItemHandler(carts)
	result, err := handler.Handle(UpdateItemCommand{UserID: 7, ItemID: item.ID, Quantity: 0})
	require.NoError(t, err)

	assert.True(t, result.Removed)
	assert.Equal(t, 0, result.TotalItems)
	assert.True(t, result.TotalPrice.IsZero())

	_, err = carts.FindItemForUser(item.ID, 7)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestUpdateItemWrongUser(t *testing.T) {
	gpu := newTestProduct(1, "RTX 4080", "100.00", 3)
	products := map[uint]*catalog.Product{1: gpu}

	carts := newFakeCartRepository()
	item := seedCartWithItem(t, carts, products, 7, 1, 2)

	handler := NewUpdateItemHandler(carts)
	_, err := handler.Handle(UpdateItemCommand{UserID: 8, ItemID: item.ID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestRemoveItem(t *testing.T) {
	gpu := newTestProduct(1, "RTX 4080", "100.00", 3)
	cpu := newTestProduct(2, "Ryzen 9", "50.00", 5)
	products := map[uint]*catalog.Product{1: gpu, 2: cpu}

	carts := newFakeCartRepository()
	item := seedCartWithItem(t, carts, products, 7, 1, 2)
	seedCartWithItem(t, carts, products, 7, 2, 1)

	handler := NewRemoveItemHandler(carts)
	result, err := handler.Handle(RemoveItemCommand{UserID: 7, ItemID: item.ID})
	require.NoError(t, err)

	assert.Equal(t, "RTX 4080 removed from cart", result.Message)
	assert.Equal(t, 1, result.TotalItems)
	assert.True(t, result.TotalPrice.Equal(price("50.00")))
}

func TestRemoveItemNotFound(t *testing.T) {
	carts := newFakeCartRepository()
	handler := NewRemoveItemHandler(carts)

	_, err := handler.Handle(RemoveItemCommand{UserID: 7, ItemID: 42})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
