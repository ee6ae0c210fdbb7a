package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stitchkart.in/storefront/api/pkg/models"
)

func sampleItems() []models.LineItem {
	return []models.LineItem{
		{ID: "c1", Name: "Classic Tee", PriceMinor: 799, Size: "M", Color: "Black", Quantity: 1, InStock: true},
		{ID: "c2", Name: "Bomber Jacket", PriceMinor: 4599, Size: "L", Color: "Navy Blue", Quantity: 1, InStock: true},
		{ID: "c3", Name: "Floral Dress", PriceMinor: 2599, Size: "S", Color: "Pink", Quantity: 2, InStock: false},
	}
}

func TestAddItemRejectsDuplicateID(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(models.LineItem{ID: "c1", PriceMinor: 799, Quantity: 1}))

	err := c.AddItem(models.LineItem{ID: "c1", PriceMinor: 799, Quantity: 3})
	assert.ErrorIs(t, err, ErrDuplicateItem)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestAddItemClampsQuantity(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(models.LineItem{ID: "c1", PriceMinor: 799, Quantity: 0}))
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestUpdateQuantityNeverDropsBelowOne(t *testing.T) {
	c, err := Seeded(sampleItems())
	require.NoError(t, err)

	for _, q := range []int{5, 0, -3, 1, -100} {
		c.UpdateQuantity("c1", q)
		got := c.Items()[0].Quantity
		assert.GreaterOrEqual(t, got, 1, "requested %d", q)
	}

	c.UpdateQuantity("c1", 0)
	assert.Equal(t, 1, c.Items()[0].Quantity)

	// unknown id is a no-op, not an error
	c.UpdateQuantity("missing", 7)
	assert.Equal(t, 3, c.Len())
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	c, err := Seeded(sampleItems())
	require.NoError(t, err)

	c.RemoveItem("c2")
	assert.Equal(t, 2, c.Len())

	c.RemoveItem("c2")
	assert.Equal(t, 2, c.Len())

	ids := []string{c.Items()[0].ID, c.Items()[1].ID}
	assert.Equal(t, []string{"c1", "c3"}, ids)
}

func TestSnapshotTotals(t *testing.T) {
	// cart = c1 at 799x1 (in stock) + c3 at 2599x2 (out of stock)
	c := New()
	require.NoError(t, c.AddItem(models.LineItem{ID: "c1", PriceMinor: 799, Quantity: 1, InStock: true}))
	require.NoError(t, c.AddItem(models.LineItem{ID: "c3", PriceMinor: 2599, Quantity: 2, InStock: false}))

	snap := c.Snapshot()
	assert.Equal(t, int64(5997), snap.SubtotalMinor, "subtotal counts out-of-stock lines")
	assert.Equal(t, int64(99), snap.ShippingMinor)
	assert.Equal(t, int64(6096), snap.TotalMinor)
	assert.Equal(t, 3, snap.TotalItems)
}

func TestSnapshotOfEmptyCartHasNoShipping(t *testing.T) {
	snap := New().Snapshot()
	assert.Zero(t, snap.SubtotalMinor)
	assert.Zero(t, snap.ShippingMinor)
	assert.Zero(t, snap.TotalMinor)
	assert.Zero(t, snap.TotalItems)
}

func TestSnapshotIsDecoupledFromLaterMutation(t *testing.T) {
	c, err := Seeded(sampleItems())
	require.NoError(t, err)

	snap := c.Snapshot()
	frozenTotal := snap.TotalMinor
	frozenCount := len(snap.Items)

	c.UpdateQuantity("c1", 10)
	c.RemoveItem("c2")
	c.Clear()

	assert.Equal(t, frozenTotal, snap.TotalMinor)
	assert.Len(t, snap.Items, frozenCount)
	assert.Equal(t, 1, snap.Items[0].Quantity)
}

func TestEligibleItemsFiltersOutOfStock(t *testing.T) {
	c, err := Seeded(sampleItems())
	require.NoError(t, err)

	eligible := c.Snapshot().EligibleItems()
	require.Len(t, eligible, 2)
	assert.Equal(t, "c1", eligible[0].ID)
	assert.Equal(t, "c2", eligible[1].ID)
}

func TestClearEmptiesCart(t *testing.T) {
	c, err := Seeded(sampleItems())
	require.NoError(t, err)

	c.Clear()
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Items())
}
