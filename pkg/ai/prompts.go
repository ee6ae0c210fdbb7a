package ai

import (
	"encoding/json"
	"fmt"
)

// System prompts for AI report types
const (
	OrderHistorySystemPrompt = `You are a retail analyst for a fashion storefront.
Analyze a shopper's order history metrics and provide insights on:
- Purchase frequency and spend trends
- Product preferences from the top items
- Suggestions for what to surface to this shopper next
Amounts are integer minor-currency units (divide by 100 for display).
Keep responses to 2-3 short paragraphs of clear, non-technical language.`
)

// formatOrderHistoryPrompt renders the computed metrics for the model.
func formatOrderHistoryPrompt(metrics OrderHistoryMetrics) string {
	payload, err := json.MarshalIndent(metrics, "", "  ")
	if err != nil {
		return fmt.Sprintf("order_count=%d revenue_minor=%d items_sold=%d",
			metrics.OrderCount, metrics.RevenueMinor, metrics.ItemsSold)
	}
	return "Order history metrics:\n" + string(payload)
}
