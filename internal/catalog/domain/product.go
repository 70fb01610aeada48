package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCompanyNotFound  = errors.New("company not found")
)

// Product represents a catalog product
type Product struct {
	ID                 uint            `json:"id" gorm:"primaryKey"`
	Name               string          `json:"name" gorm:"not null"`
	Slug               string          `json:"slug" gorm:"uniqueIndex:idx_products_slug_scope;not null"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage" gorm:"type:numeric(5,2);default:0"`
	Stock              int             `json:"stock" gorm:"not null;default:0"`
	IsAvailable        bool            `json:"is_available" gorm:"default:true"`
	IsFeatured         bool            `json:"is_featured" gorm:"default:false"`
	CategoryID         uint            `json:"category_id" gorm:"uniqueIndex:idx_products_slug_scope;not null;index"`
	CompanyID          uint            `json:"company_id" gorm:"uniqueIndex:idx_products_slug_scope;not null;index"`
	Category           *Category       `json:"category,omitempty"`
	Company            *Company        `json:"company,omitempty"`
	Images             []ProductImage  `json:"images,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	DeletedAt          gorm.DeletedAt  `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// DiscountedPrice is the price actually charged, rounded to currency precision
func (p *Product) DiscountedPrice() decimal.Decimal {
	if p.DiscountPercentage.IsZero() {
		return p.Price.Round(2)
	}
	factor := decimal.NewFromInt(100).Sub(p.DiscountPercentage).Div(decimal.NewFromInt(100))
	return p.Price.Mul(factor).Round(2)
}

// Purchasable reports whether the product can be added to a cart.
// A product with zero stock is not purchasable even when is_available is set.
func (p *Product) Purchasable() bool {
	return p.IsAvailable && p.Stock > 0
}

// Sort keys accepted by company product listings
const (
	SortName      = "name"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortNewest    = "newest"
)

// CompanyProductsFilter narrows a company product listing
type CompanyProductsFilter struct {
	CategoryID uint
	CompanyID  uint
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	SortBy     string
	Limit      int
	Offset     int
}

// CatalogRepository defines the contract for catalog data access
type CatalogRepository interface {
	// Categories
	CreateCategory(category *Category) error
	FindAllCategories() ([]Category, error)
	FindCategoryBySlug(slug string) (*Category, error)

	// Companies
	CreateCompany(company *Company) error
	FindCompanyBySlug(slug string) (*Company, error)

	// Products
	CreateProduct(product *Product) error
	UpdateProduct(product *Product) error
	DeleteProduct(id uint) error
	UpdateStock(id uint, stock int) error
	FindProductByID(id uint) (*Product, error)
	FindProductBySlugs(categorySlug, companySlug, productSlug string) (*Product, error)
	FindFeatured(limit int) ([]Product, error)
	FindTopDiscounted(limit int) ([]Product, error)
	FindCompanyProducts(filter CompanyProductsFilter) ([]Product, int64, error)
	SearchProducts(query string, limit, offset int) ([]Product, int64, error)
	FindRelated(productID, categoryID uint, limit int) ([]Product, error)
	CountProducts() (int64, error)

	// Images
	AddImage(image *ProductImage) error
}
