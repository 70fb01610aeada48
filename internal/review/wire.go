//go:build wireinject
// +build wireinject

package review

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	reviewhttp "github.com/pcshop/storefront/internal/review/delivery/http"
	"github.com/pcshop/storefront/internal/review/domain"
	"github.com/pcshop/storefront/internal/review/repository"
	"github.com/pcshop/storefront/internal/review/usecase/command"
	"github.com/pcshop/storefront/internal/review/usecase/query"
)

// ProvideReviewRepository provides the review repository
func ProvideReviewRepository(db *gorm.DB) domain.ReviewRepository {
	return repository.NewGormReviewRepository(db)
}

// Command Handlers Providers
func ProvideUpsertReviewHandler(repo domain.ReviewRepository) *command.UpsertReviewHandler {
	return command.NewUpsertReviewHandler(repo)
}

// Query Handlers Providers
func ProvideGetRatingHandler(repo domain.ReviewRepository) *query.GetRatingHandler {
	return query.NewGetRatingHandler(repo)
}

func ProvideListReviewsHandler(repo domain.ReviewRepository) *query.ListReviewsHandler {
	return query.NewListReviewsHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideReviewRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideUpsertReviewHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetRatingHandler,
	ProvideListReviewsHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHandler initializes review handler with all dependencies
func InitializeHandler(db *gorm.DB) (*reviewhttp.ReviewHandler, error) {
	wire.Build(
		AllHandlersSet,
		reviewhttp.NewReviewHandlerWithDI,
	)
	return nil, nil
}
