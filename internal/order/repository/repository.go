package repository

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	cart "github.com/pcshop/storefront/internal/cart/domain"
	"github.com/pcshop/storefront/internal/order/domain"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Order{}, &domain.OrderItem{})
}

// PlaceOrder converts the user's cart into an order inside one transaction.
// Each product's stock is decremented with a conditional update; if any line
// no longer has enough stock the whole transaction rolls back and the cart is
// left untouched.
func (r *GormOrderRepository) PlaceOrder(order *domain.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var userCart cart.Cart
		err := tx.Where("user_id = ?", order.UserID).First(&userCart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEmptyCart
		}
		if err != nil {
			return fmt.Errorf("failed to load cart: %w", err)
		}

		var items []cart.CartItem
		if err := tx.Preload("Product").
			Where("cart_id = ?", userCart.ID).
			Order("id").
			Find(&items).Error; err != nil {
			return fmt.Errorf("failed to load cart items: %w", err)
		}
		if len(items) == 0 {
			return domain.ErrEmptyCart
		}

		for i := range items {
			if items[i].Product == nil {
				return fmt.Errorf("cart item %d references a missing product", items[i].ID)
			}
			order.Items = append(order.Items, domain.OrderItem{
				ProductID:   items[i].ProductID,
				ProductName: items[i].Product.Name,
				Price:       items[i].Product.DiscountedPrice(),
				Quantity:    items[i].Quantity,
			})
		}

		order.TotalPrice = decimal.Zero
		for i := range order.Items {
			order.TotalPrice = order.TotalPrice.Add(order.Items[i].TotalPrice())
		}

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i := range items {
			res := tx.Exec(
				"UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?",
				items[i].Quantity, items[i].ProductID, items[i].Quantity,
			)
			if res.Error != nil {
				return fmt.Errorf("failed to decrement stock: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("not enough stock for %s: %w",
					items[i].Product.Name, domain.ErrInsufficientStock)
			}
		}

		if err := tx.Where("cart_id = ?", userCart.ID).
			Delete(&cart.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to empty cart: %w", err)
		}

		return nil
	})
}

func (r *GormOrderRepository) FindByIDForUser(orderID, userID uint) (*domain.Order, error) {
	var order domain.Order
	err := r.db.Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindByUserID(userID uint) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) FindAll(limit, offset int) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Preload("Items").
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) UpdateStatus(orderID uint, status string) error {
	res := r.db.Model(&domain.Order{}).
		Where("id = ?", orderID).
		Update("order_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *GormOrderRepository) UpdatePaymentStatus(orderID uint, status string) error {
	res := r.db.Model(&domain.Order{}).
		Where("id = ?", orderID).
		Update("payment_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *GormOrderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Order{}).Count(&count).Error
	return count, err
}
