package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/aykah/storefront/internal/cart/domain"
)

var tracer = otel.Tracer("cart-repository")

// TracingCartRepository wraps a CartRepository with tracing
type TracingCartRepository struct {
	next domain.CartRepository
}

// NewTracingCartRepository creates a tracing decorator over a repository
func NewTracingCartRepository(next domain.CartRepository) *TracingCartRepository {
	return &TracingCartRepository{next: next}
}

// Get with tracing
func (r *TracingCartRepository) Get(ctx context.Context, key string) (*domain.Cart, error) {
	ctx, span := tracer.Start(ctx, "repository.GetCart")
	defer span.End()

	cart, err := r.next.Get(ctx, key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("cart.items", cart.Len()),
		attribute.Int("cart.count", cart.Count()),
	)
	return cart, nil
}

// Save with tracing
func (r *TracingCartRepository) Save(ctx context.Context, key string, cart *domain.Cart) error {
	ctx, span := tracer.Start(ctx, "repository.SaveCart",
		trace.WithAttributes(
			attribute.Int("cart.items", cart.Len()),
			attribute.Int("cart.count", cart.Count()),
		),
	)
	defer span.End()

	if err := r.next.Save(ctx, key, cart); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Delete with tracing
func (r *TracingCartRepository) Delete(ctx context.Context, key string) error {
	ctx, span := tracer.Start(ctx, "repository.DeleteCart")
	defer span.End()

	if err := r.next.Delete(ctx, key); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
