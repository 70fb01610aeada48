package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pcshop/storefront/internal/cart/domain"
)

type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Cart{}, &domain.CartItem{})
}

func (r *GormCartRepository) FindOrCreateByUser(userID uint) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.db.Where(domain.Cart{UserID: userID}).FirstOrCreate(&cart).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Preload("Product").
		Where("cart_id = ?", cart.ID).
		Order("id ASC").
		Find(&cart.Items).Error
	if err != nil {
		return nil, err
	}

	return &cart, nil
}

// FindItemForUser resolves a cart item scoped to its owner. The filter joins
// through the cart so another user's item ids are indistinguishable from
// missing ones.
func (r *GormCartRepository) FindItemForUser(itemID, userID uint) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.Preload("Product").
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpsertItem inserts the line or atomically increments its quantity when the
// (cart, product) line already exists. The increment happens in the database,
// not read-modify-write in application code.
func (r *GormCartRepository) UpsertItem(cartID, productID uint, delta int) (*domain.CartItem, error) {
	item := &domain.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  delta,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(item).Error
	if err != nil {
		return nil, err
	}

	var out domain.CartItem
	err = r.db.Preload("Product").
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ClampQuantity caps the line quantity at max. Reports whether a row was
// actually reduced.
func (r *GormCartRepository) ClampQuantity(itemID uint, max int) (bool, error) {
	res := r.db.Model(&domain.CartItem{}).
		Where("id = ? AND quantity > ?", itemID, max).
		Update("quantity", max)
	return res.RowsAffected > 0, res.Error
}

func (r *GormCartRepository) SetQuantity(itemID uint, quantity int) error {
	return r.db.Model(&domain.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

func (r *GormCartRepository) DeleteItem(itemID uint) error {
	return r.db.Delete(&domain.CartItem{}, itemID).Error
}
