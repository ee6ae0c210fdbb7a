package orderlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stitchkart.in/storefront/api/pkg/models"
)

func testOrder(id string, total int64) models.Order {
	return models.Order{
		ID:         id,
		CreatedAt:  time.Now(),
		Items:      []models.LineItem{{ID: "c1", Name: "Classic Tee", PriceMinor: total, Quantity: 1, InStock: true}},
		TotalMinor: total,
		PaymentRef: "pay_" + id,
		Status:     models.OrderStatusPaid,
	}
}

func TestLoadOnEmptyStoreReturnsEmptyList(t *testing.T) {
	log := New(NewMemoryStore(), "")

	orders, err := log.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestLoadSwallowsUnparseablePayload(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), DefaultKey, "{not json"))

	log := New(store, "")
	orders, err := log.Load(context.Background())
	require.NoError(t, err, "corrupt payload reads as empty, not as an error")
	assert.Empty(t, orders)
}

func TestAppendPrependsMostRecentFirst(t *testing.T) {
	log := New(NewMemoryStore(), "")
	ctx := context.Background()

	require.NoError(t, log.Append(ctx, testOrder("ORD-1", 799)))
	require.NoError(t, log.Append(ctx, testOrder("ORD-2", 4599)))
	require.NoError(t, log.Append(ctx, testOrder("ORD-3", 2599)))

	orders, err := log.Load(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "ORD-3", orders[0].ID)
	assert.Equal(t, "ORD-2", orders[1].ID)
	assert.Equal(t, "ORD-1", orders[2].ID)
}

func TestAppendSurvivesRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, New(store, "").Append(ctx, testOrder("ORD-1", 799)))

	// a fresh Log over the same store sees the persisted entry
	orders, err := New(store, "").Load(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-1", orders[0].ID)
	assert.Equal(t, int64(799), orders[0].TotalMinor)
	assert.Equal(t, models.OrderStatusPaid, orders[0].Status)
}

func TestAppendSurfacesWriteFailure(t *testing.T) {
	store := NewMemoryStore()
	store.FailSet = errors.New("disk full")

	err := New(store, "").Append(context.Background(), testOrder("ORD-1", 799))
	require.Error(t, err)
	assert.ErrorIs(t, err, store.FailSet)
}

func TestLogsWithDistinctKeysAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	logA := New(store, "orders:session-a")
	logB := New(store, "orders:session-b")

	require.NoError(t, logA.Append(ctx, testOrder("ORD-A", 100)))

	ordersB, err := logB.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, ordersB)

	ordersA, err := logA.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, ordersA, 1)
}
