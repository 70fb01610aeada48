//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	cart "github.com/pcshop/storefront/internal/cart/domain"
	orderhttp "github.com/pcshop/storefront/internal/order/delivery/http"
	"github.com/pcshop/storefront/internal/order/domain"
	"github.com/pcshop/storefront/internal/order/repository"
	"github.com/pcshop/storefront/internal/order/usecase/command"
	"github.com/pcshop/storefront/internal/order/usecase/query"
	user "github.com/pcshop/storefront/internal/user/domain"
	"github.com/pcshop/storefront/kafka"
)

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepository(db)
}

// Command Handlers Providers
func ProvidePlaceOrderHandler(repo domain.OrderRepository) *command.PlaceOrderHandler {
	return command.NewPlaceOrderHandler(repo)
}

func ProvideUpdateStatusHandler(repo domain.OrderRepository) *command.UpdateStatusHandler {
	return command.NewUpdateStatusHandler(repo)
}

func ProvideUpdatePaymentStatusHandler(repo domain.OrderRepository) *command.UpdatePaymentStatusHandler {
	return command.NewUpdatePaymentStatusHandler(repo)
}

// Query Handlers Providers
func ProvideGetOrderHandler(repo domain.OrderRepository) *query.GetOrderHandler {
	return query.NewGetOrderHandler(repo)
}

func ProvideListOrdersHandler(repo domain.OrderRepository) *query.ListOrdersHandler {
	return query.NewListOrdersHandler(repo)
}

func ProvideListAllOrdersHandler(repo domain.OrderRepository) *query.ListAllOrdersHandler {
	return query.NewListAllOrdersHandler(repo)
}

func ProvideGetCheckoutHandler(carts cart.CartRepository, users user.UserRepository) *query.GetCheckoutHandler {
	return query.NewGetCheckoutHandler(carts, users)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvidePlaceOrderHandler,
	ProvideUpdateStatusHandler,
	ProvideUpdatePaymentStatusHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetOrderHandler,
	ProvideListOrdersHandler,
	ProvideListAllOrdersHandler,
	ProvideGetCheckoutHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHandler initializes order handler with all dependencies
func InitializeHandler(
	db *gorm.DB,
	carts cart.CartRepository,
	users user.UserRepository,
	kafkaPublisher *kafka.Publisher,
) (*orderhttp.OrderHandler, error) {
	wire.Build(
		AllHandlersSet,
		orderhttp.NewOrderHandlerWithDI,
	)
	return nil, nil
}
