package cart

import (
	"github.com/google/wire"

	"github.com/aykah/storefront/internal/cart/domain"
	"github.com/aykah/storefront/internal/cart/repository"
	"github.com/aykah/storefront/internal/cart/usecase/command"
	"github.com/aykah/storefront/internal/cart/usecase/query"
)

// ProvideTracedCartRepository wraps a cart repository with tracing
func ProvideTracedCartRepository(repo domain.CartRepository) domain.CartRepository {
	return repository.NewTracingCartRepository(repo)
}

// Wire sets
var UsecaseSet = wire.NewSet(
	command.NewAddItemHandler,
	command.NewRemoveItemHandler,
	command.NewUpdateQuantityHandler,
	command.NewClearCartHandler,
	query.NewGetCartHandler,
)
