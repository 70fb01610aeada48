package query

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pcshop/storefront/internal/catalog/domain"
)

// PageSize is the fixed page size for product listings
const PageSize = 12

// ListCompanyProductsQuery lists one company's products within a category
type ListCompanyProductsQuery struct {
	CategorySlug string
	CompanySlug  string
	MinPrice     string // optional, decimal string
	MaxPrice     string // optional, decimal string
	SortBy       string // name|price_low|price_high|newest
	Page         int    // 1-based
}

// ProductPage is one page of a product listing
type ProductPage struct {
	Category *domain.Category `json:"category,omitempty"`
	Company  *domain.Company  `json:"company,omitempty"`
	Products []domain.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// ListCompanyProductsHandler handles the company products query
type ListCompanyProductsHandler struct {
	repo domain.CatalogRepository
}

// NewListCompanyProductsHandler creates a new list company products handler
func NewListCompanyProductsHandler(repo domain.CatalogRepository) *ListCompanyProductsHandler {
	return &ListCompanyProductsHandler{repo: repo}
}

// Handle executes the company products query
func (h *ListCompanyProductsHandler) Handle(q ListCompanyProductsQuery) (*ProductPage, error) {
	if q.CategorySlug == "" || q.CompanySlug == "" {
		return nil, fmt.Errorf("category and company slugs are required")
	}

	category, err := h.repo.FindCategoryBySlug(q.CategorySlug)
	if err != nil {
		return nil, err
	}

	company, err := h.repo.FindCompanyBySlug(q.CompanySlug)
	if err != nil {
		return nil, err
	}

	if q.Page <= 0 {
		q.Page = 1
	}

	filter := domain.CompanyProductsFilter{
		CategoryID: category.ID,
		CompanyID:  company.ID,
		SortBy:     q.SortBy,
		Limit:      PageSize,
		Offset:     (q.Page - 1) * PageSize,
	}

	if q.MinPrice != "" {
		min, err := decimal.NewFromString(q.MinPrice)
		if err != nil {
			return nil, fmt.Errorf("invalid min_price")
		}
		filter.MinPrice = &min
	}
	if q.MaxPrice != "" {
		max, err := decimal.NewFromString(q.MaxPrice)
		if err != nil {
			return nil, fmt.Errorf("invalid max_price")
		}
		filter.MaxPrice = &max
	}

	products, total, err := h.repo.FindCompanyProducts(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &ProductPage{
		Category: category,
		Company:  company,
		Products: products,
		Total:    total,
		Page:     q.Page,
		PageSize: PageSize,
	}, nil
}
