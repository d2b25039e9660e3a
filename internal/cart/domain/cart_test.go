package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/aykah/storefront/internal/catalog/domain"
)

var (
	backpack = catalog.Product{ID: 1, Title: "Backpack", Price: 109.95}
	tshirt   = catalog.Product{ID: 2, Title: "T-Shirt", Price: 22.3}
	jacket   = catalog.Product{ID: 3, Title: "Jacket", Price: 55.99}
)

func TestAddItemAccumulatesQuantity(t *testing.T) {
	cart := NewCart()

	cart.AddItem(backpack)
	cart.AddItem(backpack)

	assert.Equal(t, 2, cart.Quantity(backpack.ID))
	assert.Equal(t, 1, cart.Len())
}

func TestAddItemKeepsOneEntryPerProduct(t *testing.T) {
	cart := NewCart()

	cart.AddItem(backpack)
	cart.AddItem(tshirt)
	cart.AddItem(backpack)

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, backpack.ID, items[0].Product.ID)
	assert.Equal(t, tshirt.ID, items[1].Product.ID)
}

func TestTotalIsSumOfSubtotals(t *testing.T) {
	cart := NewCart()

	cart.AddItem(backpack)
	cart.AddItem(backpack)
	cart.AddItem(tshirt)

	assert.InDelta(t, 2*109.95+22.3, cart.Total(), 1e-9)
	assert.Equal(t, 3, cart.Count())
}

func TestSetQuantityBelowOneRemovesItem(t *testing.T) {
	cart := NewCart()
	cart.AddItem(backpack)

	cart.SetQuantity(backpack.ID, 0)

	assert.Zero(t, cart.Quantity(backpack.ID))
	assert.Zero(t, cart.Len())

	cart.AddItem(tshirt)
	cart.SetQuantity(tshirt.ID, -3)
	assert.Zero(t, cart.Len())
}

func TestSetQuantityIgnoresAbsentProduct(t *testing.T) {
	cart := NewCart()

	cart.SetQuantity(99, 5)

	assert.Zero(t, cart.Len())
}

func TestRemoveItemAbsentIsNoOp(t *testing.T) {
	cart := NewCart()
	cart.AddItem(backpack)

	cart.RemoveItem(99)

	assert.Equal(t, 1, cart.Len())
}

func TestRemoveItemPreservesOrder(t *testing.T) {
	cart := NewCart()
	cart.AddItem(backpack)
	cart.AddItem(tshirt)
	cart.AddItem(jacket)

	cart.RemoveItem(tshirt.ID)

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, backpack.ID, items[0].Product.ID)
	assert.Equal(t, jacket.ID, items[1].Product.ID)
}

func TestClearEmptiesCart(t *testing.T) {
	cart := NewCart()
	cart.AddItem(backpack)
	cart.AddItem(tshirt)

	cart.Clear()

	assert.Zero(t, cart.Len())
	assert.Zero(t, cart.Total())
	assert.Empty(t, cart.Items())
}

func TestFromItemsCollapsesDuplicatesAndDropsInvalid(t *testing.T) {
	cart := FromItems([]Item{
		{Product: backpack, Quantity: 2},
		{Product: backpack, Quantity: 1},
		{Product: tshirt, Quantity: 0},
		{Product: jacket, Quantity: -1},
	})

	assert.Equal(t, 1, cart.Len())
	assert.Equal(t, 3, cart.Quantity(backpack.ID))
}

func TestItemsReturnsCopy(t *testing.T) {
	cart := NewCart()
	cart.AddItem(backpack)

	items := cart.Items()
	items[0].Quantity = 42

	assert.Equal(t, 1, cart.Quantity(backpack.ID))
}
