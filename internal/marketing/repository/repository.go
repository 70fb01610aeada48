package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pcshop/storefront/internal/marketing/domain"
)

type GormMarketingRepository struct {
	db *gorm.DB
}

func NewGormMarketingRepository(db *gorm.DB) *GormMarketingRepository {
	return &GormMarketingRepository{db: db}
}

func (r *GormMarketingRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Newsletter{}, &domain.ContactMessage{})
}

// Subscribe inserts the address or reactivates an earlier unsubscribed row
func (r *GormMarketingRepository) Subscribe(email string) (*domain.Newsletter, error) {
	sub := &domain.Newsletter{
		Email:        email,
		IsActive:     true,
		SubscribedAt: time.Now(),
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"is_active": true, "updated_at": time.Now()}),
	}).Create(sub).Error
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}
	return sub, nil
}

func (r *GormMarketingRepository) Unsubscribe(email string) error {
	return r.db.Model(&domain.Newsletter{}).
		Where("email = ?", email).
		Update("is_active", false).Error
}

func (r *GormMarketingRepository) CreateContactMessage(msg *domain.ContactMessage) error {
	if err := r.db.Create(msg).Error; err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}

func (r *GormMarketingRepository) FindContactMessages(limit, offset int) ([]domain.ContactMessage, error) {
	var messages []domain.ContactMessage
	err := r.db.Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *GormMarketingRepository) MarkContactMessageRead(id uint) error {
	return r.db.Model(&domain.ContactMessage{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}
