package domain

import (
	"regexp"
	"strings"
	"time"
)

// Category groups products (CPUs, GPUs, motherboards, ...)
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Slug      string    `json:"slug" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Companies []Company `json:"companies,omitempty" gorm:"many2many:company_categories;"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// Company is a product manufacturer carried by the shop
type Company struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"uniqueIndex"`
	Website   string    `json:"website"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Categories []Category `json:"categories,omitempty" gorm:"many2many:company_categories;"`
}

// TableName specifies the table name
func (Company) TableName() string {
	return "companies"
}

// ProductImage is an additional gallery image for a product
type ProductImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	URL       string    `json:"url" gorm:"not null"`
	AltText   string    `json:"alt_text"`
	Position  int       `json:"position" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (ProductImage) TableName() string {
	return "product_images"
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a display name
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
