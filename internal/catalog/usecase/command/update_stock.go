package command

import (
	"fmt"

	"github.com/pcshop/storefront/internal/catalog/domain"
)

// UpdateStockCommand represents the command to set a product's stock level
type UpdateStockCommand struct {
	ProductID uint
	Stock     int
}

// UpdateStockHandler handles update stock command
type UpdateStockHandler struct {
	repo domain.CatalogRepository
}

// NewUpdateStockHandler creates a new update stock handler
func NewUpdateStockHandler(repo domain.CatalogRepository) *UpdateStockHandler {
	return &UpdateStockHandler{repo: repo}
}

// Handle executes the update stock command
func (h *UpdateStockHandler) Handle(cmd UpdateStockCommand) error {
	if cmd.ProductID == 0 {
		return fmt.Errorf("product_id is required")
	}
	if cmd.Stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}

	if _, err := h.repo.FindProductByID(cmd.ProductID); err != nil {
		return err
	}

	if err := h.repo.UpdateStock(cmd.ProductID, cmd.Stock); err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}

	return nil
}
