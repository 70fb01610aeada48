package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcshop/storefront/internal/review/domain"
	"github.com/pcshop/storefront/pkg/auth"
)

type fakeReviewRepository struct {
	mu      sync.Mutex
	reviews []domain.Review
	nextID  uint
}

func (f *fakeReviewRepository) Upsert(review *domain.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.reviews {
		if f.reviews[i].ProductID == review.ProductID && f.reviews[i].UserID == review.UserID {
			review.ID = f.reviews[i].ID
			f.reviews[i] = *review
			return nil
		}
	}
	f.nextID++
	review.ID = f.nextID
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeReviewRepository) FindByProduct(productID uint, limit, offset int) ([]domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Review
	for _, r := range f.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepository) Summary(productID uint) (*domain.RatingSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	summary := &domain.RatingSummary{ProductID: productID}
	var total int
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

// The handler registers prometheus collectors on construction, so the router
// is built once per test binary.
var (
	setupOnce  sync.Once
	testRouter *mux.Router
)

func reviewRouter(t *testing.T) *mux.Router {
	t.Helper()
	setupOnce.Do(func() {
		repo := &fakeReviewRepository{}
		require.NoError(t, repo.Upsert(&domain.Review{ProductID: 1, UserID: 7, Rating: 5, Comment: "Runs everything"}))
		require.NoError(t, repo.Upsert(&domain.Review{ProductID: 1, UserID: 8, Rating: 3, Comment: "Loud fans"}))

		handler := NewReviewHandler(repo)
		testRouter = mux.NewRouter()
		handler.RegisterRoutes(testRouter)
	})
	return testRouter
}

func listReviews(t *testing.T, token string) []reviewView {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/products/1/reviews", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	reviewRouter(t).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Success)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var views []reviewView
	require.NoError(t, json.Unmarshal(raw, &views))
	return views
}

func TestListReviewsAnonymous(t *testing.T) {
	views := listReviews(t, "")
	require.Len(t, views, 2)
	for _, v := range views {
		assert.False(t, v.IsMine)
	}
}

func TestListReviewsMarksOwnReview(t *testing.T) {
	token, err := auth.GenerateToken(7, "asha", "customer")
	require.NoError(t, err)

	views := listReviews(t, token)
	require.Len(t, views, 2)
	for _, v := range views {
		assert.Equal(t, v.UserID == 7, v.IsMine, "review by user %d", v.UserID)
	}
}

func TestListReviewsIgnoresBadToken(t *testing.T) {
	views := listReviews(t, "not-a-jwt")
	require.Len(t, views, 2)
	for _, v := range views {
		assert.False(t, v.IsMine)
	}
}

func TestSubmitReviewRequiresAuth(t *testing.T) {
	body := bytes.NewBufferString(`{"rating": 4, "comment": "Solid"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/products/1/reviews", body)
	rec := httptest.NewRecorder()
	reviewRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmitReviewRejectsOutOfRangeRating(t *testing.T) {
	token, err := auth.GenerateToken(9, "ravi", "customer")
	require.NoError(t, err)

	body := bytes.NewBufferString(`{"rating": 6, "comment": "Too good"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/products/1/reviews", body)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	reviewRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, domain.ErrInvalidRating.Error(), resp.Error)
}
