package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stitchkart.in/storefront/api/pkg/cart"
	"stitchkart.in/storefront/api/pkg/models"
	"stitchkart.in/storefront/api/pkg/orderlog"
	"stitchkart.in/storefront/api/pkg/payment"
)

func mixedCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.Seeded([]models.LineItem{
		{ID: "c1", Name: "Classic Tee", PriceMinor: 799, Quantity: 1, InStock: true},
		{ID: "c3", Name: "Floral Dress", PriceMinor: 2599, Quantity: 2, InStock: false},
	})
	require.NoError(t, err)
	return c
}

func newTestMachine(t *testing.T) (*Machine, *orderlog.Log, *orderlog.MemoryStore) {
	t.Helper()
	store := orderlog.NewMemoryStore()
	log := orderlog.New(store, "")
	return NewMachine(log), log, store
}

func TestProceedToCheckoutRejectsAllOutOfStock(t *testing.T) {
	m, _, _ := newTestMachine(t)

	c, err := cart.Seeded([]models.LineItem{
		{ID: "c3", PriceMinor: 2599, Quantity: 2, InStock: false},
	})
	require.NoError(t, err)

	err = m.ProceedToCheckout(c.Snapshot())
	assert.ErrorIs(t, err, ErrNoEligibleItems)
	assert.Equal(t, StateCart, m.State(), "guard failure must not change state")
}

func TestProceedToCheckoutFreezesEligibleSubsetAndWholeCartTotal(t *testing.T) {
	m, _, _ := newTestMachine(t)
	c := mixedCart(t)

	require.NoError(t, m.ProceedToCheckout(c.Snapshot()))
	assert.Equal(t, StateReviewing, m.State())

	// only in-stock lines carry forward as order items
	eligible := m.EligibleItems()
	require.Len(t, eligible, 1)
	assert.Equal(t, "c1", eligible[0].ID)

	// but the frozen total covers the whole displayed cart
	assert.Equal(t, int64(6096), m.FrozenTotal())
}

func TestFrozenTotalImmuneToLaterCartMutation(t *testing.T) {
	m, _, _ := newTestMachine(t)
	c := mixedCart(t)

	require.NoError(t, m.ProceedToCheckout(c.Snapshot()))

	c.UpdateQuantity("c1", 50)
	c.Clear()

	assert.Equal(t, int64(6096), m.FrozenTotal())
	assert.Equal(t, int64(5997), m.FrozenSnapshot().SubtotalMinor)
	require.Len(t, m.EligibleItems(), 1)
}

func TestFullCheckoutFlowPlacesOrderOnce(t *testing.T) {
	m, log, _ := newTestMachine(t)
	c := mixedCart(t)
	ctx := context.Background()

	require.NoError(t, m.ProceedToCheckout(c.Snapshot()))
	require.NoError(t, m.ProceedToPayment(models.ShippingAddress{Name: "John Doe", City: "Mumbai"}))
	assert.Equal(t, StateAwaitingPayment, m.State())

	order, err := m.CompletePayment(ctx, "pay_abc123")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, StatePlaced, m.State())
	assert.Equal(t, models.OrderStatusPaid, order.Status)
	assert.Equal(t, "pay_abc123", order.PaymentRef)
	assert.Equal(t, int64(6096), order.TotalMinor)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "c1", order.Items[0].ID)

	orders, err := log.Load(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestDuplicateConfirmationIsIdempotent(t *testing.T) {
	m, log, _ := newTestMachine(t)
	c := mixedCart(t)
	ctx := context.Background()

	require.NoError(t, m.ProceedToCheckout(c.Snapshot()))
	require.NoError(t, m.ProceedToPayment(models.ShippingAddress{}))

	first, err := m.CompletePayment(ctx, "pay_first")
	require.NoError(t, err)

	// confirmation delivered twice while already placed
	second, err := m.CompletePayment(ctx, "pay_second")
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, "pay_first", second.PaymentRef)

	orders, err := log.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1, "duplicate confirmation must not append a second order")
}

func TestPaymentFailureKeepsStateRetryable(t *testing.T) {
	m, log, _ := newTestMachine(t)
	c := mixedCart(t)
	ctx := context.Background()

	require.NoError(t, m.ProceedToCheckout(c.Snapshot()))
	require.NoError(t, m.ProceedToPayment(models.ShippingAddress{}))

	declined := &payment.Sandbox{Declined: "card declined by issuer"}
	order, err := m.Pay(ctx, declined)
	assert.Nil(t, order)

	var payErr *payment.Error
	require.ErrorAs(t, err, &payErr)
	assert.Equal(t, "card declined by issuer", payErr.Reason)
	assert.Equal(t, StateAwaitingPayment, m.State())
	assert.Equal(t, "card declined by issuer", m.LastFailure())

	orders, loadErr := log.Load(ctx)
	require.NoError(t, loadErr)
	assert.Empty(t, orders)

	// retry with a working gateway succeeds
	order, err = m.Pay(ctx, &payment.Sandbox{})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, StatePlaced, m.State())
	assert.Empty(t, m.LastFailure())
}

func TestFailPaymentRecordsReason(t *testing.T) {
	m, _, _ := newTestMachine(t)
	c := mixedCart(t)

	require.NoError(t, m.ProceedToCheckout(c.Snapshot()))
	require.NoError(t, m.ProceedToPayment(models.ShippingAddress{}))

	err := m.FailPayment("insufficient funds")
	var payErr *payment.Error
	require.ErrorAs(t, err, &payErr)
	assert.Equal(t, "insufficient funds", m.LastFailure())
	assert.Equal(t, StateAwaitingPayment, m.State())
}

func TestTransitionsRejectedFromWrongState(t *testing.T) {
	m, _, _ := newTestMachine(t)
	ctx := context.Background()

	err := m.ProceedToPayment(models.ShippingAddress{})
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = m.CompletePayment(ctx, "pay_x")
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = m.Pay(ctx, &payment.Sandbox{})
	assert.ErrorIs(t, err, ErrInvalidState)

	assert.ErrorIs(t, m.FailPayment("nope"), ErrInvalidState)

	// a second ProceedToCheckout mid-flight is also rejected
	c := mixedCart(t)
	require.NoError(t, m.ProceedToCheckout(c.Snapshot()))
	err = m.ProceedToCheckout(c.Snapshot())
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestPlacedOrderPersistsWhenWriteFails(t *testing.T) {
	store := orderlog.NewMemoryStore()
	store.FailSet = errors.New("store unavailable")
	m := NewMachine(orderlog.New(store, ""))
	c := mixedCart(t)
	ctx := context.Background()

	require.NoError(t, m.ProceedToCheckout(c.Snapshot()))
	require.NoError(t, m.ProceedToPayment(models.ShippingAddress{}))

	order, err := m.CompletePayment(ctx, "pay_abc")
	require.Error(t, err, "write failure must be surfaced, not swallowed")
	require.NotNil(t, order, "the charge went through; the order stands")
	assert.Equal(t, StatePlaced, m.State())
}
