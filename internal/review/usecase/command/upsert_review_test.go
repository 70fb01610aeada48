package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcshop/storefront/internal/review/domain"
)

type reviewKey struct {
	productID uint
	userID    uint
}

// fakeReviewRepository keeps one review per (product, user) pair, like the
// unique index in the real table.
type fakeReviewRepository struct {
	reviews map[reviewKey]*domain.Review
	nextID  uint
}

func newFakeReviewRepository() *fakeReviewRepository {
	return &fakeReviewRepository{
		reviews: make(map[reviewKey]*domain.Review),
		nextID:  1,
	}
}

func (f *fakeReviewRepository) Upsert(review *domain.Review) error {
	key := reviewKey{productID: review.ProductID, userID: review.UserID}
	if existing, ok := f.reviews[key]; ok {
		existing.Rating = review.Rating
		existing.Comment = review.Comment
		review.ID = existing.ID
		return nil
	}

	review.ID = f.nextID
	f.nextID++
	stored := *review
	f.reviews[key] = &stored
	return nil
}

func (f *fakeReviewRepository) FindByProduct(productID uint, limit, offset int) ([]domain.Review, error) {
	var out []domain.Review
	for _, r := range f.reviews {
		if r.ProductID == productID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepository) Summary(productID uint) (*domain.RatingSummary, error) {
	summary := &domain.RatingSummary{ProductID: productID}
	total := 0
	for _, r := range f.reviews {
		if r.ProductID == productID {
			summary.Count++
			total += r.Rating
		}
	}
	if summary.Count > 0 {
		summary.Average = float64(total) / float64(summary.Count)
	}
	return summary, nil
}

func TestUpsertReview(t *testing.T) {
	repo := newFakeReviewRepository()
	handler := NewUpsertReviewHandler(repo)

	review, err := handler.Handle(UpsertReviewCommand{
		ProductID: 1,
		UserID:    42,
		Rating:    4,
		Comment:   "Runs cool and quiet",
	})

	require.NoError(t, err)
	assert.NotZero(t, review.ID)
	assert.Equal(t, 4, review.Rating)
}

func TestUpsertReviewReplacesExisting(t *testing.T) {
	repo := newFakeReviewRepository()
	handler := NewUpsertReviewHandler(repo)

	first, err := handler.Handle(UpsertReviewCommand{ProductID: 1, UserID: 42, Rating: 2, Comment: "Noisy fan"})
	require.NoError(t, err)

	second, err := handler.Handle(UpsertReviewCommand{ProductID: 1, UserID: 42, Rating: 5, Comment: "Fixed after driver update"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "resubmission must keep the same review row")

	reviews, err := repo.FindByProduct(1, 20, 0)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "Fixed after driver update", reviews[0].Comment)
}

func TestUpsertReviewRatingBounds(t *testing.T) {
	repo := newFakeReviewRepository()
	handler := NewUpsertReviewHandler(repo)

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := handler.Handle(UpsertReviewCommand{ProductID: 1, UserID: 42, Rating: rating})
		assert.ErrorIs(t, err, domain.ErrInvalidRating, "rating %d", rating)
	}

	for rating := domain.MinRating; rating <= domain.MaxRating; rating++ {
		_, err := handler.Handle(UpsertReviewCommand{ProductID: 1, UserID: 42, Rating: rating})
		assert.NoError(t, err, "rating %d", rating)
	}
}

func TestUpsertReviewRequiresIdentifiers(t *testing.T) {
	handler := NewUpsertReviewHandler(newFakeReviewRepository())

	_, err := handler.Handle(UpsertReviewCommand{UserID: 42, Rating: 3})
	assert.Error(t, err)

	_, err = handler.Handle(UpsertReviewCommand{ProductID: 1, Rating: 3})
	assert.Error(t, err)
}
