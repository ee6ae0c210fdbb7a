package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stitchkart.in/storefront/api/pkg/checkout"
	"stitchkart.in/storefront/api/pkg/models"
	"stitchkart.in/storefront/api/pkg/orderlog"
)

func TestGetOrCreateIsStablePerID(t *testing.T) {
	r := NewRegistry(orderlog.NewMemoryStore())

	a := r.GetOrCreate("sess-1")
	b := r.GetOrCreate("sess-1")
	assert.Same(t, a, b)

	other := r.GetOrCreate("sess-2")
	assert.NotSame(t, a, other)
}

func TestEmptyIDGetsGeneratedOne(t *testing.T) {
	r := NewRegistry(orderlog.NewMemoryStore())

	s := r.GetOrCreate("")
	assert.NotEmpty(t, s.ID)

	again := r.GetOrCreate(s.ID)
	assert.Same(t, s, again)
}

func TestSessionsHaveIsolatedOrderLogs(t *testing.T) {
	store := orderlog.NewMemoryStore()
	r := NewRegistry(store)
	ctx := context.Background()

	a := r.GetOrCreate("sess-a")
	b := r.GetOrCreate("sess-b")

	require.NoError(t, a.Orders.Append(ctx, models.Order{ID: "ORD-A", Status: models.OrderStatusPaid}))

	ordersB, err := b.Orders.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, ordersB)

	ordersA, err := a.Orders.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, ordersA, 1)
}

func TestResetCheckoutArmsFreshMachineOverSameLog(t *testing.T) {
	r := NewRegistry(orderlog.NewMemoryStore())
	s := r.GetOrCreate("sess-1")

	old := s.Checkout
	s.ResetCheckout()
	assert.NotSame(t, old, s.Checkout)
	assert.Equal(t, checkout.StateCart, s.Checkout.State())
}

func TestDropForgetsInMemoryStateOnly(t *testing.T) {
	store := orderlog.NewMemoryStore()
	r := NewRegistry(store)
	ctx := context.Background()

	s := r.GetOrCreate("sess-1")
	require.NoError(t, s.Orders.Append(ctx, models.Order{ID: "ORD-1", Status: models.OrderStatusPaid}))

	r.Drop("sess-1")
	revived := r.GetOrCreate("sess-1")
	assert.NotSame(t, s, revived)

	orders, err := revived.Orders.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1, "persisted orders survive a dropped session")
}
