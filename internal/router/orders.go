package router

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"stitchkart.in/storefront/api/pkg/ai"
	"stitchkart.in/storefront/api/pkg/global"
)

// GetOrderHistory returns the session's placed orders, most recent first.
// A fresh session gets an empty list, never an error.
func GetOrderHistory(c *gin.Context) {
	s := currentSession(c)

	orders, err := s.Orders.Load(c.Request.Context())
	if err != nil {
		log.Printf("Error loading order history for session %s: %v", s.ID, err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load order history", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(orders))
}

// GenerateOrderReport computes order-history metrics and, when the AI
// service is configured, adds narrative insights.
func GenerateOrderReport(c *gin.Context) {
	s := currentSession(c)
	ctx := c.Request.Context()

	orders, err := s.Orders.Load(ctx)
	if err != nil {
		log.Printf("Error loading order history for session %s: %v", s.ID, err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load order history", nil))
		return
	}

	report, err := ai.GenerateOrderHistoryReport(ctx, orders)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to generate report", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(report))
}
