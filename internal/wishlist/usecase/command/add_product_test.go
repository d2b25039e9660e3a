package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/aykah/storefront/internal/catalog/domain"
	"github.com/aykah/storefront/internal/wishlist/repository"
)

type stubCatalogGateway struct {
	products map[uint]catalog.Product
	err      error
}

func (s *stubCatalogGateway) ListProducts(_ context.Context, _ string) ([]catalog.Product, error) {
	return nil, s.err
}

func (s *stubCatalogGateway) GetProduct(_ context.Context, id uint) (*catalog.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	if p, ok := s.products[id]; ok {
		return &p, nil
	}
	return nil, catalog.ErrProductNotFound
}

func (s *stubCatalogGateway) ListCategories(_ context.Context) ([]string, error) {
	return nil, s.err
}

func fixtureGateway() *stubCatalogGateway {
	return &stubCatalogGateway{products: map[uint]catalog.Product{
		4: {ID: 4, Title: "Gold Ring", Price: 168},
		5: {ID: 5, Title: "External Drive", Price: 64},
	}}
}

func TestAddProductIsIdempotent(t *testing.T) {
	wishlists := repository.NewMemoryWishlistRepository()
	handler := NewAddProductHandler(wishlists, fixtureGateway())
	ctx := context.Background()

	_, err := handler.Handle(ctx, AddProductCommand{SessionKey: "s1", ProductID: 4})
	require.NoError(t, err)

	w, err := handler.Handle(ctx, AddProductCommand{SessionKey: "s1", ProductID: 4})
	require.NoError(t, err)

	assert.Equal(t, 1, w.Len())
	assert.True(t, w.Contains(4))
}

func TestAddProductUnknownProduct(t *testing.T) {
	handler := NewAddProductHandler(repository.NewMemoryWishlistRepository(), fixtureGateway())

	_, err := handler.Handle(context.Background(), AddProductCommand{SessionKey: "s1", ProductID: 99})
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestRemoveProductAbsentIsNoOp(t *testing.T) {
	wishlists := repository.NewMemoryWishlistRepository()
	addHandler := NewAddProductHandler(wishlists, fixtureGateway())
	removeHandler := NewRemoveProductHandler(wishlists)
	ctx := context.Background()

	_, err := addHandler.Handle(ctx, AddProductCommand{SessionKey: "s1", ProductID: 4})
	require.NoError(t, err)

	w, err := removeHandler.Handle(ctx, RemoveProductCommand{SessionKey: "s1", ProductID: 99})
	require.NoError(t, err)
	assert.Equal(t, 1, w.Len())

	w, err = removeHandler.Handle(ctx, RemoveProductCommand{SessionKey: "s1", ProductID: 4})
	require.NoError(t, err)
	assert.Zero(t, w.Len())
}

func TestClearWishlist(t *testing.T) {
	wishlists := repository.NewMemoryWishlistRepository()
	addHandler := NewAddProductHandler(wishlists, fixtureGateway())
	clearHandler := NewClearWishlistHandler(wishlists)
	ctx := context.Background()

	_, err := addHandler.Handle(ctx, AddProductCommand{SessionKey: "s1", ProductID: 4})
	require.NoError(t, err)
	_, err = addHandler.Handle(ctx, AddProductCommand{SessionKey: "s1", ProductID: 5})
	require.NoError(t, err)

	require.NoError(t, clearHandler.Handle(ctx, ClearWishlistCommand{SessionKey: "s1"}))

	w, err := wishlists.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Zero(t, w.Len())
}

func TestWishlistsAreSessionScoped(t *testing.T) {
	wishlists := repository.NewMemoryWishlistRepository()
	handler := NewAddProductHandler(wishlists, fixtureGateway())
	ctx := context.Background()

	_, err := handler.Handle(ctx, AddProductCommand{SessionKey: "alice", ProductID: 4})
	require.NoError(t, err)

	bob, err := wishlists.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Zero(t, bob.Len())
}
