package query

import (
	"fmt"

	"github.com/pcshop/storefront/internal/review/domain"
)

// ListReviewsQuery lists a product's reviews, newest first
type ListReviewsQuery struct {
	ProductID uint
	Limit     int
	Offset    int
}

// ListReviewsHandler handles list reviews query
type ListReviewsHandler struct {
	repo domain.ReviewRepository
}

// NewListReviewsHandler creates a new list reviews handler
func NewListReviewsHandler(repo domain.ReviewRepository) *ListReviewsHandler {
	return &ListReviewsHandler{repo: repo}
}

// Handle executes the list reviews query
func (h *ListReviewsHandler) Handle(q ListReviewsQuery) ([]domain.Review, error) {
	if q.ProductID == 0 {
		return nil, fmt.Errorf("product_id is required")
	}
	if q.Limit <= 0 {
		q.Limit = 20
	}

	reviews, err := h.repo.FindByProduct(q.ProductID, q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}
