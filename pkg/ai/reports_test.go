package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stitchkart.in/storefront/api/pkg/models"
)

func TestComputeOrderHistoryMetrics(t *testing.T) {
	earlier := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	later := time.Date(2026, 8, 15, 18, 30, 0, 0, time.UTC)

	orders := []models.Order{
		{
			ID: "ORD-2", CreatedAt: later, TotalMinor: 4698, Status: models.OrderStatusPaid,
			Items: []models.LineItem{
				{ID: "p4", Name: "Bomber Jacket", PriceMinor: 4599, Quantity: 1},
			},
		},
		{
			ID: "ORD-1", CreatedAt: earlier, TotalMinor: 1697, Status: models.OrderStatusPaid,
			Items: []models.LineItem{
				{ID: "p1", Name: "Classic Tee", PriceMinor: 799, Quantity: 2},
			},
		},
	}

	metrics := ComputeOrderHistoryMetrics(orders)
	assert.Equal(t, int64(2), metrics.OrderCount)
	assert.Equal(t, int64(6395), metrics.RevenueMinor)
	assert.Equal(t, 3, metrics.ItemsSold)
	assert.Equal(t, int64(3197), metrics.AvgOrderMinor)
	assert.Equal(t, 2, metrics.ByStatus["paid"])

	require.NotNil(t, metrics.First)
	require.NotNil(t, metrics.Latest)
	assert.Equal(t, earlier, *metrics.First)
	assert.Equal(t, later, *metrics.Latest)

	require.Len(t, metrics.TopItems, 2)
	assert.Equal(t, "Classic Tee", metrics.TopItems[0].Name)
	assert.Equal(t, 2, metrics.TopItems[0].Quantity)
}

func TestComputeOrderHistoryMetricsEmpty(t *testing.T) {
	metrics := ComputeOrderHistoryMetrics(nil)
	assert.Zero(t, metrics.OrderCount)
	assert.Zero(t, metrics.AvgOrderMinor)
	assert.Nil(t, metrics.First)
	assert.Empty(t, metrics.TopItems)
}
