package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stitchkart.in/storefront/api/pkg/global"
	"stitchkart.in/storefront/api/pkg/mongo"
)

func GetWishlist(c *gin.Context) {
	s := currentSession(c)

	products, err := mongo.GetWishlistProducts(c.Request.Context(), s.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load wishlist", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(products))
}

func AddToWishlist(c *gin.Context) {
	s := currentSession(c)
	productID := c.Param("productId")

	// Only real catalog products can be saved
	if _, err := mongo.GetProductByID(c.Request.Context(), productID); err != nil {
		if errors.Is(err, mongo.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "productId", Message: "No product exists with this id", Code: "not_found"},
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch product", nil))
		return
	}

	entry, err := mongo.AddToWishlist(c.Request.Context(), s.ID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to save to wishlist", nil))
		return
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(entry))
}

func RemoveFromWishlist(c *gin.Context) {
	s := currentSession(c)
	productID := c.Param("productId")

	if err := mongo.RemoveFromWishlist(c.Request.Context(), s.ID, productID); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to remove from wishlist", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"removed": productID}))
}
