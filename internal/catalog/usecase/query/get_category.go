package query

import (
	"fmt"

	"github.com/pcshop/storefront/internal/catalog/domain"
)

// GetCategoryQuery represents the query to fetch a category with its companies
type GetCategoryQuery struct {
	Slug string
}

// GetCategoryHandler handles get category query
type GetCategoryHandler struct {
	repo domain.CatalogRepository
}

// NewGetCategoryHandler creates a new get category handler
func NewGetCategoryHandler(repo domain.CatalogRepository) *GetCategoryHandler {
	return &GetCategoryHandler{repo: repo}
}

// Handle executes the get category query
func (h *GetCategoryHandler) Handle(q GetCategoryQuery) (*domain.Category, error) {
	if q.Slug == "" {
		return nil, fmt.Errorf("category slug is required")
	}
	return h.repo.FindCategoryBySlug(q.Slug)
}
