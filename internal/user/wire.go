//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	userhttp "github.com/pcshop/storefront/internal/user/delivery/http"
	"github.com/pcshop/storefront/internal/user/domain"
	"github.com/pcshop/storefront/internal/user/repository"
	"github.com/pcshop/storefront/internal/user/usecase/command"
	"github.com/pcshop/storefront/internal/user/usecase/query"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

// Command Handlers Providers
func ProvideRegisterUserHandler(repo domain.UserRepository) *command.RegisterUserHandler {
	return command.NewRegisterUserHandler(repo)
}

func ProvideLoginUserHandler(repo domain.UserRepository) *command.LoginUserHandler {
	return command.NewLoginUserHandler(repo)
}

func ProvideUpdateProfileHandler(repo domain.UserRepository) *command.UpdateProfileHandler {
	return command.NewUpdateProfileHandler(repo)
}

// Query Handlers Providers
func ProvideGetUserHandler(repo domain.UserRepository) *query.GetUserHandler {
	return query.NewGetUserHandler(repo)
}

func ProvideGetProfileHandler(repo domain.UserRepository) *query.GetProfileHandler {
	return query.NewGetProfileHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideRegisterUserHandler,
	ProvideLoginUserHandler,
	ProvideUpdateProfileHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetUserHandler,
	ProvideGetProfileHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHandler initializes user handler with all dependencies
func InitializeHandler(db *gorm.DB) (*userhttp.UserHandler, error) {
	wire.Build(
		AllHandlersSet,
		userhttp.NewUserHandlerWithDI,
	)
	return nil, nil
}
