package command

import (
	"fmt"

	"github.com/pcshop/storefront/internal/review/domain"
)

// UpsertReviewCommand submits or replaces a user's review of a product
type UpsertReviewCommand struct {
	ProductID uint
	UserID    uint
	Rating    int
	Comment   string
}

// UpsertReviewHandler handles review submission
type UpsertReviewHandler struct {
	repo domain.ReviewRepository
}

// NewUpsertReviewHandler creates a new upsert review handler
func NewUpsertReviewHandler(repo domain.ReviewRepository) *UpsertReviewHandler {
	return &UpsertReviewHandler{repo: repo}
}

// Handle executes the upsert review command. Calling it twice for the same
// (product, user) pair leaves exactly one review with the latest content.
func (h *UpsertReviewHandler) Handle(cmd UpsertReviewCommand) (*domain.Review, error) {
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("product_id is required")
	}
	if cmd.UserID == 0 {
		return nil, fmt.Errorf("user_id is required")
	}
	if cmd.Rating < domain.MinRating || cmd.Rating > domain.MaxRating {
		return nil, domain.ErrInvalidRating
	}

	review := &domain.Review{
		ProductID: cmd.ProductID,
		UserID:    cmd.UserID,
		Rating:    cmd.Rating,
		Comment:   cmd.Comment,
	}

	if err := h.repo.Upsert(review); err != nil {
		return nil, fmt.Errorf("failed to save review: %w", err)
	}

	return review, nil
}
