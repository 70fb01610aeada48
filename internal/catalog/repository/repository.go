package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/pcshop/storefront/internal/catalog/domain"
)

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&domain.Category{},
		&domain.Company{},
		&domain.Product{},
		&domain.ProductImage{},
	)
}

func (r *GormCatalogRepository) CreateCategory(category *domain.Category) error {
	return r.db.Create(category).Error
}

func (r *GormCatalogRepository) FindAllCategories() ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *GormCatalogRepository) FindCategoryBySlug(slug string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.Preload("Companies").Where("slug = ?", slug).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormCatalogRepository) CreateCompany(company *domain.Company) error {
	return r.db.Create(company).Error
}

func (r *GormCatalogRepository) FindCompanyBySlug(slug string) (*domain.Company, error) {
	var company domain.Company
	err := r.db.Where("slug = ?", slug).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *GormCatalogRepository) CreateProduct(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormCatalogRepository) UpdateProduct(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *GormCatalogRepository) DeleteProduct(id uint) error {
	return r.db.Delete(&domain.Product{}, id).Error
}

func (r *GormCatalogRepository) UpdateStock(id uint, stock int) error {
	return r.db.Model(&domain.Product{}).Where("id = ?", id).Update("stock", stock).Error
}

func (r *GormCatalogRepository) FindProductByID(id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormCatalogRepository) FindProductBySlugs(categorySlug, companySlug, productSlug string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.
		Joins("JOIN categories ON categories.id = products.category_id").
		Joins("JOIN companies ON companies.id = products.company_id").
		Where("products.slug = ? AND categories.slug = ? AND companies.slug = ?",
			productSlug, categorySlug, companySlug).
		Preload("Category").
		Preload("Company").
		Preload("Images").
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormCatalogRepository) FindFeatured(limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("is_featured = ?", true).Limit(limit).Find(&products).Error
	return products, err
}

func (r *GormCatalogRepository) FindTopDiscounted(limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("discount_percentage > 0").
		Order("discount_percentage DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *GormCatalogRepository) FindCompanyProducts(filter domain.CompanyProductsFilter) ([]domain.Product, int64, error) {
	query := r.db.Model(&domain.Product{}).
		Where("category_id = ? AND company_id = ?", filter.CategoryID, filter.CompanyID)

	if filter.MinPrice != nil {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", filter.MaxPrice)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.SortBy {
	case domain.SortPriceLow:
		query = query.Order("price ASC")
	case domain.SortPriceHigh:
		query = query.Order("price DESC")
	case domain.SortNewest:
		query = query.Order("created_at DESC")
	default:
		query = query.Order("name ASC")
	}

	var products []domain.Product
	err := query.Limit(filter.Limit).Offset(filter.Offset).Find(&products).Error
	return products, total, err
}

func (r *GormCatalogRepository) SearchProducts(query string, limit, offset int) ([]domain.Product, int64, error) {
	pattern := "%" + query + "%"

	base := r.db.Model(&domain.Product{}).
		Joins("JOIN categories ON categories.id = products.category_id").
		Joins("JOIN companies ON companies.id = products.company_id").
		Where(
			"products.name ILIKE ? OR products.description ILIKE ? OR categories.name ILIKE ? OR companies.name ILIKE ?",
			pattern, pattern, pattern, pattern,
		).
		Distinct("products.*")

	var total int64
	if err := base.Session(&gorm.Session{}).Distinct("products.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []domain.Product
	err := base.
		Preload("Category").
		Preload("Company").
		Order("products.name ASC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	return products, total, err
}

func (r *GormCatalogRepository) FindRelated(productID, categoryID uint, limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("category_id = ? AND id != ?", categoryID, productID).
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *GormCatalogRepository) CountProducts() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	return count, err
}

func (r *GormCatalogRepository) AddImage(image *domain.ProductImage) error {
	return r.db.Create(image).Error
}
