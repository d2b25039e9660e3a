//go:build wireinject
// +build wireinject

package wishlist

import (
	"github.com/google/wire"

	cartcommand "github.com/aykah/storefront/internal/cart/usecase/command"
	catalog "github.com/aykah/storefront/internal/catalog/domain"
	"github.com/aykah/storefront/internal/wishlist/delivery/http"
	"github.com/aykah/storefront/internal/wishlist/domain"
	"github.com/aykah/storefront/kafka"
)

// InitializeHTTPHandler initializes the wishlist HTTP handler with all
// dependencies. The cart add handler backs move-to-cart; the publisher
// may be nil.
func InitializeHTTPHandler(repo domain.WishlistRepository, gateway catalog.CatalogGateway, cartAdd *cartcommand.AddItemHandler, publisher *kafka.Publisher) (*http.WishlistHandler, error) {
	wire.Build(
		UsecaseSet,
		http.NewWishlistHandler,
	)
	return nil, nil
}
