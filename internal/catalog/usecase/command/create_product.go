package command

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pcshop/storefront/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Name               string
	Description        string
	Price              decimal.Decimal
	DiscountPercentage decimal.Decimal
	Stock              int
	IsAvailable        bool
	IsFeatured         bool
	CategoryID         uint
	CompanyID          uint
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.CatalogRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.CatalogRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.Price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if cmd.DiscountPercentage.IsNegative() || cmd.DiscountPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("discount percentage must be between 0 and 100")
	}
	if cmd.Stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}
	if cmd.CategoryID == 0 || cmd.CompanyID == 0 {
		return nil, fmt.Errorf("category and company are required")
	}

	product := &domain.Product{
		Name:               cmd.Name,
		Slug:               domain.Slugify(cmd.Name),
		Description:        cmd.Description,
		Price:              cmd.Price,
		DiscountPercentage: cmd.DiscountPercentage,
		Stock:              cmd.Stock,
		IsAvailable:        cmd.IsAvailable,
		IsFeatured:         cmd.IsFeatured,
		CategoryID:         cmd.CategoryID,
		CompanyID:          cmd.CompanyID,
	}

	if err := h.repo.CreateProduct(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
