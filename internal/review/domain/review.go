package domain

import (
	"errors"
	"time"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Rating scale bounds
const (
	MinRating = 1
	MaxRating = 5
)

// Review is one user's review of one product. A user has at most one
// review per product; resubmission overwrites it.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"uniqueIndex:idx_reviews_product_user;not null"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_reviews_product_user;not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Review) TableName() string {
	return "reviews"
}

// RatingSummary aggregates a product's reviews. Count distinguishes
// "no reviews yet" from a genuine zero average.
type RatingSummary struct {
	ProductID uint    `json:"product_id"`
	Average   float64 `json:"average"`
	Count     int64   `json:"count"`
}

// ReviewRepository defines the contract for review data access
type ReviewRepository interface {
	Upsert(review *Review) error
	FindByProduct(productID uint, limit, offset int) ([]Review, error)
	Summary(productID uint) (*RatingSummary, error)
}
