package command

import (
	"fmt"

	"github.com/pcshop/storefront/internal/catalog/domain"
)

// CreateCategoryCommand represents the command to create a category
type CreateCategoryCommand struct {
	Name string
}

// CreateCategoryHandler handles category creation command
type CreateCategoryHandler struct {
	repo domain.CatalogRepository
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(repo domain.CatalogRepository) *CreateCategoryHandler {
	return &CreateCategoryHandler{repo: repo}
}

// Handle executes the create category command
func (h *CreateCategoryHandler) Handle(cmd CreateCategoryCommand) (*domain.Category, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	category := &domain.Category{
		Name: cmd.Name,
		Slug: domain.Slugify(cmd.Name),
	}

	if err := h.repo.CreateCategory(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}
