package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stitchkart.in/storefront/api/pkg/cart"
	"stitchkart.in/storefront/api/pkg/global"
	"stitchkart.in/storefront/api/pkg/models"
	"stitchkart.in/storefront/api/pkg/mongo"
)

// GetCart returns the cart snapshot: items plus derived totals.
func GetCart(c *gin.Context) {
	s := currentSession(c)

	s.Mu.Lock()
	snap := s.Cart.Snapshot()
	s.Mu.Unlock()

	c.JSON(http.StatusOK, global.SuccessResponse(snap))
}

// AddToCart inserts a catalog product into the cart with the chosen variant.
// A product already in the cart is rejected; the client bumps quantity via
// the update endpoint instead.
func AddToCart(c *gin.Context) {
	s := currentSession(c)

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	product, err := mongo.GetProductByID(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, mongo.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "product_id", Message: "No product exists with this id", Code: "not_found"},
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch product", nil))
		return
	}

	item := product.ToLineItem(req.Size, req.Color, req.Quantity)

	s.Mu.Lock()
	err = s.Cart.AddItem(item)
	snap := s.Cart.Snapshot()
	s.Mu.Unlock()

	if errors.Is(err, cart.ErrDuplicateItem) {
		c.JSON(http.StatusConflict, global.ErrorResponse("Item already in cart", []global.ValidationError{
			{Field: "product_id", Message: "Use the quantity update endpoint to change quantity", Code: "duplicate_item"},
		}))
		return
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(snap))
}

// UpdateCartItem sets the quantity for a cart line. Values below 1 clamp to
// 1; unknown ids leave the cart untouched.
func UpdateCartItem(c *gin.Context) {
	s := currentSession(c)
	id := c.Param("id")

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "quantity", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	s.Mu.Lock()
	s.Cart.UpdateQuantity(id, req.Quantity)
	snap := s.Cart.Snapshot()
	s.Mu.Unlock()

	c.JSON(http.StatusOK, global.SuccessResponse(snap))
}

func RemoveFromCart(c *gin.Context) {
	s := currentSession(c)
	id := c.Param("id")

	s.Mu.Lock()
	s.Cart.RemoveItem(id)
	snap := s.Cart.Snapshot()
	s.Mu.Unlock()

	c.JSON(http.StatusOK, global.SuccessResponse(snap))
}

func ClearCart(c *gin.Context) {
	s := currentSession(c)

	s.Mu.Lock()
	s.Cart.Clear()
	snap := s.Cart.Snapshot()
	s.Mu.Unlock()

	c.JSON(http.StatusOK, global.SuccessResponse(snap))
}
