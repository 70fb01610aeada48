package query

import (
	"fmt"

	"github.com/pcshop/storefront/internal/catalog/domain"
)

// GetProductQuery fetches one product by its URL slugs
type GetProductQuery struct {
	CategorySlug string
	CompanySlug  string
	ProductSlug  string
}

// ProductDetail is a product with its related products attached
type ProductDetail struct {
	Product *domain.Product  `json:"product"`
	Related []domain.Product `json:"related_products"`
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.CatalogRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.CatalogRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(q GetProductQuery) (*ProductDetail, error) {
	if q.CategorySlug == "" || q.CompanySlug == "" || q.ProductSlug == "" {
		return nil, fmt.Errorf("category, company and product slugs are required")
	}

	product, err := h.repo.FindProductBySlugs(q.CategorySlug, q.CompanySlug, q.ProductSlug)
	if err != nil {
		return nil, err
	}

	related, err := h.repo.FindRelated(product.ID, product.CategoryID, 4)
	if err != nil {
		return nil, fmt.Errorf("failed to load related products: %w", err)
	}

	return &ProductDetail{Product: product, Related: related}, nil
}
