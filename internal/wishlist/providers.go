package wishlist

import (
	"github.com/google/wire"

	"github.com/aykah/storefront/internal/wishlist/usecase/command"
	"github.com/aykah/storefront/internal/wishlist/usecase/query"
)

// Wire sets
var UsecaseSet = wire.NewSet(
	command.NewAddProductHandler,
	command.NewRemoveProductHandler,
	command.NewClearWishlistHandler,
	query.NewGetWishlistHandler,
)
