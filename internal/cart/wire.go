//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	carthttp "github.com/pcshop/storefront/internal/cart/delivery/http"
	"github.com/pcshop/storefront/internal/cart/domain"
	"github.com/pcshop/storefront/internal/cart/repository"
	"github.com/pcshop/storefront/internal/cart/usecase/command"
	"github.com/pcshop/storefront/internal/cart/usecase/query"
	catalog "github.com/pcshop/storefront/internal/catalog/domain"
)

// ProvideCartRepository provides the cart repository
func ProvideCartRepository(db *gorm.DB) domain.CartRepository {
	return repository.NewGormCartRepository(db)
}

// Command Handlers Providers
func ProvideAddItemHandler(carts domain.CartRepository, catalogRepo catalog.CatalogRepository) *command.AddItemHandler {
	return command.NewAddItemHandler(carts, catalogRepo)
}

func ProvideUpdateItemHandler(carts domain.CartRepository) *command.UpdateItemHandler {
	return command.NewUpdateItemHandler(carts)
}

func ProvideRemoveItemHandler(carts domain.CartRepository) *command.RemoveItemHandler {
	return command.NewRemoveItemHandler(carts)
}

// Query Handlers Providers
func ProvideGetCartHandler(carts domain.CartRepository) *query.GetCartHandler {
	return query.NewGetCartHandler(carts)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCartRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideAddItemHandler,
	ProvideUpdateItemHandler,
	ProvideRemoveItemHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetCartHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHandler initializes cart handler with all dependencies
func InitializeHandler(db *gorm.DB, catalogRepo catalog.CatalogRepository) (*carthttp.CartHandler, error) {
	wire.Build(
		AllHandlersSet,
		carthttp.NewCartHandlerWithDI,
	)
	return nil, nil
}
