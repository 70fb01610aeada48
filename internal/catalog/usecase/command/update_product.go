package command

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pcshop/storefront/internal/catalog/domain"
)

// UpdateProductCommand represents the command to update an existing product
type UpdateProductCommand struct {
	ID                 uint
	Name               string
	Description        string
	Price              decimal.Decimal
	DiscountPercentage decimal.Decimal
	Stock              int
	IsAvailable        bool
	IsFeatured         bool
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.CatalogRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.CatalogRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
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

	product, err := h.repo.FindProductByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	product.Name = cmd.Name
	product.Slug = domain.Slugify(cmd.Name)
	product.Description = cmd.Description
	product.Price = cmd.Price
	product.DiscountPercentage = cmd.DiscountPercentage
	product.Stock = cmd.Stock
	product.IsAvailable = cmd.IsAvailable
	product.IsFeatured = cmd.IsFeatured

	if err := h.repo.UpdateProduct(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
