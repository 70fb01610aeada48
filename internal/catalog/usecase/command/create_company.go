package command

import (
	"fmt"

	"github.com/pcshop/storefront/internal/catalog/domain"
)

// CreateCompanyCommand represents the command to create a company
type CreateCompanyCommand struct {
	Name    string
	Website string
}

// CreateCompanyHandler handles company creation command
type CreateCompanyHandler struct {
	repo domain.CatalogRepository
}

// NewCreateCompanyHandler creates a new create company handler
func NewCreateCompanyHandler(repo domain.CatalogRepository) *CreateCompanyHandler {
	return &CreateCompanyHandler{repo: repo}
}

// Handle executes the create company command
func (h *CreateCompanyHandler) Handle(cmd CreateCompanyCommand) (*domain.Company, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("company name is required")
	}

	company := &domain.Company{
		Name:    cmd.Name,
		Slug:    domain.Slugify(cmd.Name),
		Website: cmd.Website,
	}

	if err := h.repo.CreateCompany(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return company, nil
}
