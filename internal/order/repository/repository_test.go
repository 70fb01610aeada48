package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pcshop/storefront/internal/order/domain"
)

func newMockRepository(t *testing.T) (*GormOrderRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return NewGormOrderRepository(db), mock
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// Two cart lines: a discounted GPU and a full-price RAM kit. The order must
// snapshot the discounted unit prices, decrement stock per line, empty the
// cart and commit as one unit.
func TestPlaceOrderSnapshotsCartAndCommits(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(5, 7))
	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE cart_id = \$1 ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "product_id", "quantity"}).
			AddRow(11, 5, 1, 3).
			AddRow(12, 5, 2, 2))
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"\."id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "discount_percentage", "stock", "is_available"}).
			AddRow(1, "RTX 4080", "100.00", "10", 5, true).
			AddRow(2, "DDR5 RAM", "50.00", "0", 10, true))
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101).AddRow(102))
	mock.ExpectExec(`UPDATE products SET stock = stock - \$1 WHERE id = \$2 AND stock >= \$3`).
		WithArgs(3, 1, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE products SET stock = stock - \$1 WHERE id = \$2 AND stock >= \$3`).
		WithArgs(2, 2, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "cart_items" WHERE cart_id = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	order := &domain.Order{
		UserID:   7,
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		Address:  "12 MG Road",
		City:     "Bengaluru",
		State:    "Karnataka",
		Pincode:  "560001",
	}
	require.NoError(t, repo.PlaceOrder(order))

	// Unit prices are copies of the discounted price at checkout time. A
	// later catalog edit only touches the products table, never these rows.
	require.Len(t, order.Items, 2)
	assert.Equal(t, "RTX 4080", order.Items[0].ProductName)
	assert.True(t, order.Items[0].Price.Equal(dec(t, "90.00")),
		"got %s", order.Items[0].Price)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, "DDR5 RAM", order.Items[1].ProductName)
	assert.True(t, order.Items[1].Price.Equal(dec(t, "50.00")),
		"got %s", order.Items[1].Price)
	assert.True(t, order.TotalPrice.Equal(dec(t, "370.00")),
		"got %s", order.TotalPrice)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderInsufficientStockRollsBack(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(5, 7))
	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE cart_id = \$1 ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "product_id", "quantity"}).
			AddRow(11, 5, 1, 5))
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"\."id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "discount_percentage", "stock", "is_available"}).
			AddRow(1, "RTX 4080", "1199.99", "0", 2, true))
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(43))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(103))

	// The guarded update matches nothing, so the whole transaction unwinds
	// and neither the order nor the stock change survives.
	mock.ExpectExec(`UPDATE products SET stock = stock - \$1 WHERE id = \$2 AND stock >= \$3`).
		WithArgs(5, 1, 5).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.PlaceOrder(&domain.Order{UserID: 7, FullName: "Asha Rao"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "RTX 4080")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderNoCart(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))
	mock.ExpectRollback()

	err := repo.PlaceOrder(&domain.Order{UserID: 7})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderCartWithNoItems(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(5, 7))
	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE cart_id = \$1 ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "product_id", "quantity"}))
	mock.ExpectRollback()

	err := repo.PlaceOrder(&domain.Order{UserID: 7})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.NoError(t, mock.ExpectationsWereMet())
}
