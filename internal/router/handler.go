package router

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stitchkart.in/storefront/api/pkg/global"
	"stitchkart.in/storefront/api/pkg/models"
	"stitchkart.in/storefront/api/pkg/mongo"
	"stitchkart.in/storefront/api/pkg/redis"
)

func HealthCheck(c *gin.Context) {
	db := mongo.GetDatabase()
	if err := db.Client().Ping(c, nil); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Database connection failed", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "OK", "database": "Connected"}))
}

func GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()

	sortBy := c.DefaultQuery("sort", mongo.SortNewest)
	switch sortBy {
	case mongo.SortNewest, mongo.SortPriceAsc, mongo.SortPriceDesc:
	default:
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid sort order", []global.ValidationError{
			{Field: "sort", Message: "Must be one of: newest, price_asc, price_desc", Code: "invalid_sort"},
		}))
		return
	}

	if category := c.Query("category"); category != "" {
		products, err := mongo.GetProductsByCategory(ctx, category, sortBy)
		if err != nil {
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to get products", nil))
			return
		}
		c.JSON(http.StatusOK, global.SuccessResponse(products))
		return
	}

	products, err := mongo.GetAllProducts(ctx, sortBy)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to get products", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(products))
}

// SearchProducts matches the query against product names and categories.
func SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Missing search query", []global.ValidationError{
			{Field: "q", Message: "Search query is required", Code: "missing_query"},
		}))
		return
	}

	products, err := mongo.SearchProducts(c.Request.Context(), query)
	if err != nil {
		log.Printf("Error searching products: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to search products", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"query":    query,
		"products": products,
		"count":    len(products),
	}))
}

// GetProductByID retrieves a product by id with Redis caching
func GetProductByID(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	// Try Redis cache first
	product, err := redis.GetProductFromCache(ctx, id)
	if err == nil {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, global.SuccessResponse(product))
		return
	}

	// Cache miss, check MongoDB
	product, err = mongo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "id", Message: "No product exists with this id", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error fetching product from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch product", nil))
		return
	}

	// Found in MongoDB, cache it for future requests
	if cacheErr := redis.CacheSingleProduct(ctx, product); cacheErr != nil {
		log.Printf("Warning: Failed to cache product in Redis: %v", cacheErr)
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, global.SuccessResponse(product))
}

func CreateNewProducts(c *gin.Context) {
	var req []models.CreateProductRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	if len(req) == 0 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("No products provided", []global.ValidationError{
			{Field: "products", Message: "At least one product is required", Code: "empty_array"},
		}))
		return
	}

	products := make([]*models.Product, len(req))
	for i, productReq := range req {
		products[i] = productReq.ToProduct()
	}

	createdProducts, err := mongo.CreateProducts(c.Request.Context(), products)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to create products", nil))
		return
	}

	if err := redis.AddProductsToCache(c.Request.Context(), createdProducts); err != nil {
		// Log the error but don't fail the request since MongoDB succeeded
		log.Printf("Warning: Failed to cache products in Redis: %v", err)
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(map[string]interface{}{
		"products": createdProducts,
		"count":    len(createdProducts),
	}))
}

// EditProductByID updates specific fields of a product
func EditProductByID(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid JSON format", []global.ValidationError{
			{Field: "body", Message: err.Error(), Code: "json_parse_error"},
		}))
		return
	}

	// Prevent updating immutable fields - remove them from updates instead of erroring
	immutableFields := []string{"_id", "id", "created_at"}
	for _, field := range immutableFields {
		if _, exists := updates[field]; exists {
			delete(updates, field)
			log.Printf("Warning: Removed immutable field '%s' from update request", field)
		}
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("No valid updates provided", []global.ValidationError{
			{Field: "body", Message: "Request body must contain at least one mutable field", Code: "empty_updates"},
		}))
		return
	}

	updatedProduct, err := mongo.UpdateProductByID(ctx, id, updates)
	if err != nil {
		if errors.Is(err, mongo.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "id", Message: "No product exists with this id", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error updating product in MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update product", nil))
		return
	}

	if cacheErr := redis.CacheSingleProduct(ctx, updatedProduct); cacheErr != nil {
		log.Printf("Warning: Failed to update product cache in Redis: %v", cacheErr)
	}

	c.Header("X-Cache", "REFRESHED")
	c.JSON(http.StatusOK, global.SuccessResponse(updatedProduct))
}

// DeleteProductByID deletes a product from both database and cache
func DeleteProductByID(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	deletedProduct, err := mongo.DeleteProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "id", Message: "No product exists with this id", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error deleting product from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to delete product", nil))
		return
	}

	if cacheErr := redis.RemoveProductFromCache(ctx, deletedProduct); cacheErr != nil {
		log.Printf("Warning: Failed to remove product from Redis cache: %v", cacheErr)
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"deleted_product": deletedProduct,
		"message":         "Product successfully deleted",
	}))
}

func GetAllCategories(c *gin.Context) {
	categories, err := mongo.GetAllCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to get categories", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(categories))
}
