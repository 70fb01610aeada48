package query

import (
	"fmt"
	"strings"

	"github.com/pcshop/storefront/internal/catalog/domain"
)

// SearchProductsQuery represents a free-text catalog search
type SearchProductsQuery struct {
	Query string
	Page  int // 1-based
}

// SearchProductsHandler handles search products query
type SearchProductsHandler struct {
	repo domain.CatalogRepository
}

// NewSearchProductsHandler creates a new search products handler
func NewSearchProductsHandler(repo domain.CatalogRepository) *SearchProductsHandler {
	return &SearchProductsHandler{repo: repo}
}

// Handle executes the search. An empty query returns an empty page rather
// than the whole catalog.
func (h *SearchProductsHandler) Handle(q SearchProductsQuery) (*ProductPage, error) {
	if q.Page <= 0 {
		q.Page = 1
	}

	query := strings.TrimSpace(q.Query)
	if query == "" {
		return &ProductPage{
			Products: []domain.Product{},
			Total:    0,
			Page:     q.Page,
			PageSize: PageSize,
		}, nil
	}

	products, total, err := h.repo.SearchProducts(query, PageSize, (q.Page-1)*PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return &ProductPage{
		Products: products,
		Total:    total,
		Page:     q.Page,
		PageSize: PageSize,
	}, nil
}
