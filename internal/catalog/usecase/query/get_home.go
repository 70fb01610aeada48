package query

import (
	"fmt"

	"github.com/pcshop/storefront/internal/catalog/domain"
)

const homeSectionSize = 8

// GetHomeQuery represents the query for the storefront landing data
type GetHomeQuery struct{}

// HomeData aggregates everything the landing page renders
type HomeData struct {
	Categories         []domain.Category `json:"categories"`
	FeaturedProducts   []domain.Product  `json:"featured_products"`
	DiscountedProducts []domain.Product  `json:"discounted_products"`
}

// GetHomeHandler handles the home query
type GetHomeHandler struct {
	repo domain.CatalogRepository
}

// NewGetHomeHandler creates a new get home handler
func NewGetHomeHandler(repo domain.CatalogRepository) *GetHomeHandler {
	return &GetHomeHandler{repo: repo}
}

// Handle executes the home query
func (h *GetHomeHandler) Handle(_ GetHomeQuery) (*HomeData, error) {
	categories, err := h.repo.FindAllCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	featured, err := h.repo.FindFeatured(homeSectionSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured products: %w", err)
	}

	discounted, err := h.repo.FindTopDiscounted(homeSectionSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list discounted products: %w", err)
	}

	return &HomeData{
		Categories:         categories,
		FeaturedProducts:   featured,
		DiscountedProducts: discounted,
	}, nil
}
