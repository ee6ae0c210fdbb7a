package ai

import (
	"context"
	"sort"
	"time"

	"stitchkart.in/storefront/api/pkg/models"
)

// AIReportResponse represents the structure of AI-generated reports
type AIReportResponse struct {
	Status      string     `json:"status"`
	Data        ReportData `json:"data"`
	GeneratedAt time.Time  `json:"generated_at"`
	AIEnabled   bool       `json:"ai_enabled"`
}

type ReportData struct {
	RawData    interface{} `json:"raw_data"`
	AIInsights string      `json:"ai_insights,omitempty"`
	Summary    string      `json:"summary"`
	Error      string      `json:"error,omitempty"`
}

// OrderHistoryMetrics are the raw numbers derived from an order log.
type OrderHistoryMetrics struct {
	OrderCount    int64          `json:"order_count"`
	RevenueMinor  int64          `json:"revenue_minor"`
	ItemsSold     int            `json:"items_sold"`
	AvgOrderMinor int64          `json:"avg_order_minor"`
	TopItems      []TopItem      `json:"top_items"`
	First         *time.Time     `json:"first_order_at,omitempty"`
	Latest        *time.Time     `json:"latest_order_at,omitempty"`
	ByStatus      map[string]int `json:"by_status"`
}

type TopItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ComputeOrderHistoryMetrics aggregates a session's placed orders.
func ComputeOrderHistoryMetrics(orders []models.Order) OrderHistoryMetrics {
	metrics := OrderHistoryMetrics{ByStatus: map[string]int{}}
	quantities := map[string]int{}

	for _, order := range orders {
		metrics.OrderCount++
		metrics.RevenueMinor += order.TotalMinor
		metrics.ItemsSold += order.ItemCount()
		metrics.ByStatus[string(order.Status)]++

		created := order.CreatedAt
		if metrics.First == nil || created.Before(*metrics.First) {
			t := created
			metrics.First = &t
		}
		if metrics.Latest == nil || created.After(*metrics.Latest) {
			t := created
			metrics.Latest = &t
		}

		for _, item := range order.Items {
			quantities[item.Name] += item.Quantity
		}
	}

	if metrics.OrderCount > 0 {
		metrics.AvgOrderMinor = metrics.RevenueMinor / metrics.OrderCount
	}

	for name, qty := range quantities {
		metrics.TopItems = append(metrics.TopItems, TopItem{Name: name, Quantity: qty})
	}
	sort.Slice(metrics.TopItems, func(i, j int) bool {
		if metrics.TopItems[i].Quantity != metrics.TopItems[j].Quantity {
			return metrics.TopItems[i].Quantity > metrics.TopItems[j].Quantity
		}
		return metrics.TopItems[i].Name < metrics.TopItems[j].Name
	})
	if len(metrics.TopItems) > 5 {
		metrics.TopItems = metrics.TopItems[:5]
	}

	return metrics
}

// GenerateOrderHistoryReport builds metrics from the order log and, when the
// AI service is enabled, layers narrative insights on top.
func GenerateOrderHistoryReport(ctx context.Context, orders []models.Order) (*AIReportResponse, error) {
	metrics := ComputeOrderHistoryMetrics(orders)

	response := &AIReportResponse{
		Status:      "success",
		GeneratedAt: time.Now(),
		AIEnabled:   IsEnabled(),
		Data: ReportData{
			RawData: metrics,
			Summary: "Order history metrics computed successfully",
		},
	}

	if IsEnabled() {
		userPrompt := formatOrderHistoryPrompt(metrics)
		aiInsights, err := generateCompletion(ctx, OrderHistorySystemPrompt, userPrompt)
		if err != nil {
			response.Data.Error = "AI analysis failed: " + err.Error()
		} else {
			response.Data.AIInsights = aiInsights
			response.Data.Summary = "AI-generated purchase insights and recommendations"
		}
	} else {
		response.Data.Summary = "Raw order metrics (AI insights unavailable)"
	}

	return response, nil
}
