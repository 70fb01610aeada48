//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	cataloghttp "github.com/pcshop/storefront/internal/catalog/delivery/http"
	"github.com/pcshop/storefront/internal/catalog/domain"
	"github.com/pcshop/storefront/internal/catalog/repository"
	"github.com/pcshop/storefront/internal/catalog/usecase/command"
	"github.com/pcshop/storefront/internal/catalog/usecase/query"
)

// ProvideCatalogRepository provides the catalog repository
func ProvideCatalogRepository(db *gorm.DB) domain.CatalogRepository {
	return repository.NewGormCatalogRepository(db)
}

// Command Handlers Providers
func ProvideCreateProductHandler(repo domain.CatalogRepository) *command.CreateProductHandler {
	return command.NewCreateProductHandler(repo)
}

func ProvideUpdateProductHandler(repo domain.CatalogRepository) *command.UpdateProductHandler {
	return command.NewUpdateProductHandler(repo)
}

func ProvideDeleteProductHandler(repo domain.CatalogRepository) *command.DeleteProductHandler {
	return command.NewDeleteProductHandler(repo)
}

func ProvideUpdateStockHandler(repo domain.CatalogRepository) *command.UpdateStockHandler {
	return command.NewUpdateStockHandler(repo)
}

func ProvideCreateCategoryHandler(repo domain.CatalogRepository) *command.CreateCategoryHandler {
	return command.NewCreateCategoryHandler(repo)
}

func ProvideCreateCompanyHandler(repo domain.CatalogRepository) *command.CreateCompanyHandler {
	return command.NewCreateCompanyHandler(repo)
}

func ProvideAddProductImageHandler(repo domain.CatalogRepository) *command.AddProductImageHandler {
	return command.NewAddProductImageHandler(repo)
}

// Query Handlers Providers
func ProvideGetHomeHandler(repo domain.CatalogRepository) *query.GetHomeHandler {
	return query.NewGetHomeHandler(repo)
}

func ProvideListCategoriesHandler(repo domain.CatalogRepository) *query.ListCategoriesHandler {
	return query.NewListCategoriesHandler(repo)
}

func ProvideGetCategoryHandler(repo domain.CatalogRepository) *query.GetCategoryHandler {
	return query.NewGetCategoryHandler(repo)
}

func ProvideListCompanyProductsHandler(repo domain.CatalogRepository) *query.ListCompanyProductsHandler {
	return query.NewListCompanyProductsHandler(repo)
}

func ProvideGetProductHandler(repo domain.CatalogRepository) *query.GetProductHandler {
	return query.NewGetProductHandler(repo)
}

func ProvideSearchProductsHandler(repo domain.CatalogRepository) *query.SearchProductsHandler {
	return query.NewSearchProductsHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCatalogRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateProductHandler,
	ProvideUpdateProductHandler,
	ProvideDeleteProductHandler,
	ProvideUpdateStockHandler,
	ProvideCreateCategoryHandler,
	ProvideCreateCompanyHandler,
	ProvideAddProductImageHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetHomeHandler,
	ProvideListCategoriesHandler,
	ProvideGetCategoryHandler,
	ProvideListCompanyProductsHandler,
	ProvideGetProductHandler,
	ProvideSearchProductsHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHandler initializes catalog handler with all dependencies
func InitializeHandler(db *gorm.DB) (*cataloghttp.CatalogHandler, error) {
	wire.Build(
		AllHandlersSet,
		cataloghttp.NewCatalogHandlerWithDI,
	)
	return nil, nil
}
