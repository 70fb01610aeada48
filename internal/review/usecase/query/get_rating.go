package query

import (
	"fmt"

	"github.com/pcshop/storefront/internal/review/domain"
)

// GetRatingQuery fetches the aggregated rating for a product
type GetRatingQuery struct {
	ProductID uint
}

// GetRatingHandler handles get rating query
type GetRatingHandler struct {
	repo domain.ReviewRepository
}

// NewGetRatingHandler creates a new get rating handler
func NewGetRatingHandler(repo domain.ReviewRepository) *GetRatingHandler {
	return &GetRatingHandler{repo: repo}
}

// Handle executes the get rating query
func (h *GetRatingHandler) Handle(q GetRatingQuery) (*domain.RatingSummary, error) {
	if q.ProductID == 0 {
		return nil, fmt.Errorf("product_id is required")
	}

	summary, err := h.repo.Summary(q.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate rating: %w", err)
	}

	return summary, nil
}
