package command

import (
	"fmt"

	"github.com/pcshop/storefront/internal/catalog/domain"
)

// AddProductImageCommand attaches a gallery image to a product
type AddProductImageCommand struct {
	ProductID uint
	URL       string
	AltText   string
	Position  int
}

// AddProductImageHandler handles add product image command
type AddProductImageHandler struct {
	repo domain.CatalogRepository
}

// NewAddProductImageHandler creates a new add product image handler
func NewAddProductImageHandler(repo domain.CatalogRepository) *AddProductImageHandler {
	return &AddProductImageHandler{repo: repo}
}

// Handle executes the add product image command
func (h *AddProductImageHandler) Handle(cmd AddProductImageCommand) (*domain.ProductImage, error) {
	if cmd.URL == "" {
		return nil, fmt.Errorf("image url is required")
	}

	if _, err := h.repo.FindProductByID(cmd.ProductID); err != nil {
		return nil, err
	}

	image := &domain.ProductImage{
		ProductID: cmd.ProductID,
		URL:       cmd.URL,
		AltText:   cmd.AltText,
		Position:  cmd.Position,
	}

	if err := h.repo.AddImage(image); err != nil {
		return nil, fmt.Errorf("failed to add product image: %w", err)
	}

	return image, nil
}
