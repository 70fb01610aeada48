package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/pcshop/storefront/internal/cart/domain"
)

var tracer = otel.Tracer("cart-repository")

// GormCartRepositoryWithTracing wraps GormCartRepository with tracing
type GormCartRepositoryWithTracing struct {
	*GormCartRepository
}

// NewGormCartRepositoryWithTracing creates a new repository with tracing
func NewGormCartRepositoryWithTracing(db *gorm.DB) *GormCartRepositoryWithTracing {
	return &GormCartRepositoryWithTracing{
		GormCartRepository: NewGormCartRepository(db),
	}
}

// FindOrCreateByUser with tracing
func (r *GormCartRepositoryWithTracing) FindOrCreateByUserWithContext(ctx context.Context, userID uint) (*domain.Cart, error) {
	_, span := tracer.Start(ctx, "repository.FindOrCreateByUser",
		trace.WithAttributes(attribute.Int("cart.user_id", int(userID))),
	)
	defer span.End()

	cart, err := r.GormCartRepository.FindOrCreateByUser(userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("cart.id", int(cart.ID)),
		attribute.Int("cart.item_count", len(cart.Items)),
	)
	return cart, nil
}

// UpsertItem with tracing
func (r *GormCartRepositoryWithTracing) UpsertItemWithContext(ctx context.Context, cartID, productID uint, delta int) (*domain.CartItem, error) {
	_, span := tracer.Start(ctx, "repository.UpsertItem",
		trace.WithAttributes(
			attribute.Int("cart.id", int(cartID)),
			attribute.Int("cart.product_id", int(productID)),
			attribute.Int("cart.delta", delta),
		),
	)
	defer span.End()

	item, err := r.GormCartRepository.UpsertItem(cartID, productID, delta)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("cart.quantity", item.Quantity))
	return item, nil
}

// ClampQuantity with tracing
func (r *GormCartRepositoryWithTracing) ClampQuantityWithContext(ctx context.Context, itemID uint, max int) (bool, error) {
	_, span := tracer.Start(ctx, "repository.ClampQuantity",
		trace.WithAttributes(
			attribute.Int("cart.item_id", int(itemID)),
			attribute.Int("cart.max", max),
		),
	)
	defer span.End()

	clamped, err := r.GormCartRepository.ClampQuantity(itemID, max)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}

	span.SetAttributes(attribute.Bool("cart.clamped", clamped))
	return clamped, nil
}

// DeleteItem with tracing
func (r *GormCartRepositoryWithTracing) DeleteItemWithContext(ctx context.Context, itemID uint) error {
	_, span := tracer.Start(ctx, "repository.DeleteItem",
		trace.WithAttributes(attribute.Int("cart.item_id", int(itemID))),
	)
	defer span.End()

	if err := r.GormCartRepository.DeleteItem(itemID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
