package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/pcshop/storefront/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// GormCatalogRepositoryWithTracing wraps GormCatalogRepository with tracing
type GormCatalogRepositoryWithTracing struct {
	*GormCatalogRepository
}

// NewGormCatalogRepositoryWithTracing creates a new repository with tracing
func NewGormCatalogRepositoryWithTracing(db *gorm.DB) *GormCatalogRepositoryWithTracing {
	return &GormCatalogRepositoryWithTracing{
		GormCatalogRepository: NewGormCatalogRepository(db),
	}
}

// FindProductBySlugs with tracing
func (r *GormCatalogRepositoryWithTracing) FindProductBySlugsWithContext(ctx context.Context, categorySlug, companySlug, productSlug string) (*domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindProductBySlugs",
		trace.WithAttributes(
			attribute.String("catalog.category_slug", categorySlug),
			attribute.String("catalog.company_slug", companySlug),
			attribute.String("catalog.product_slug", productSlug),
		),
	)
	defer span.End()

	product, err := r.GormCatalogRepository.FindProductBySlugs(categorySlug, companySlug, productSlug)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("catalog.product_id", int(product.ID)))
	return product, nil
}

// SearchProducts with tracing
func (r *GormCatalogRepositoryWithTracing) SearchProductsWithContext(ctx context.Context, query string, limit, offset int) ([]domain.Product, int64, error) {
	_, span := tracer.Start(ctx, "repository.SearchProducts",
		trace.WithAttributes(
			attribute.String("catalog.query", query),
			attribute.Int("catalog.limit", limit),
			attribute.Int("catalog.offset", offset),
		),
	)
	defer span.End()

	products, total, err := r.GormCatalogRepository.SearchProducts(query, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetAttributes(attribute.Int64("catalog.total", total))
	return products, total, nil
}

// FindCompanyProducts with tracing
func (r *GormCatalogRepositoryWithTracing) FindCompanyProductsWithContext(ctx context.Context, filter domain.CompanyProductsFilter) ([]domain.Product, int64, error) {
	_, span := tracer.Start(ctx, "repository.FindCompanyProducts",
		trace.WithAttributes(
			attribute.Int("catalog.category_id", int(filter.CategoryID)),
			attribute.Int("catalog.company_id", int(filter.CompanyID)),
		),
	)
	defer span.End()

	products, total, err := r.GormCatalogRepository.FindCompanyProducts(filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetAttributes(attribute.Int64("catalog.total", total))
	return products, total, nil
}

// UpdateStock with tracing
func (r *GormCatalogRepositoryWithTracing) UpdateStockWithContext(ctx context.Context, id uint, stock int) error {
	_, span := tracer.Start(ctx, "repository.UpdateStock",
		trace.WithAttributes(
			attribute.Int("catalog.product_id", int(id)),
			attribute.Int("catalog.stock", stock),
		),
	)
	defer span.End()

	if err := r.GormCatalogRepository.UpdateStock(id, stock); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
