package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pcshop/storefront/internal/review/domain"
)

type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Review{})
}

// Upsert inserts the review or, when one already exists for the
// (product, user) pair, overwrites its rating and comment.
func (r *GormReviewRepository) Upsert(review *domain.Review) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
	}).Create(review).Error
}

func (r *GormReviewRepository) FindByProduct(productID uint, limit, offset int) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.Where("product_id = ?", productID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

func (r *GormReviewRepository) Summary(productID uint) (*domain.RatingSummary, error) {
	summary := &domain.RatingSummary{ProductID: productID}

	err := r.db.Model(&domain.Review{}).
		Where("product_id = ?", productID).
		Count(&summary.Count).Error
	if err != nil {
		return nil, err
	}

	if summary.Count == 0 {
		return summary, nil
	}

	err = r.db.Model(&domain.Review{}).
		Where("product_id = ?", productID).
		Select("AVG(rating)").
		Scan(&summary.Average).Error
	if err != nil {
		return nil, err
	}

	return summary, nil
}
