package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"stitchkart.in/storefront/api/pkg/models"
)

const productCacheTTL = 24 * time.Hour

// CacheSingleProduct stores one product in the Redis cache keyed by id and
// tracks it on the category and recency lists.
func CacheSingleProduct(ctx context.Context, product *models.Product) error {
	client := RedisClient()
	defer client.Close()

	productJSON, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product %s: %w", product.ID, err)
	}

	// Use pipeline for atomic operations
	pipe := client.TxPipeline()

	productKey := fmt.Sprintf("product:%s", product.ID)
	pipe.Set(ctx, productKey, productJSON, productCacheTTL)

	categoryKey := fmt.Sprintf("category:%s", product.Category)
	pipe.LPush(ctx, categoryKey, product.ID)
	pipe.Expire(ctx, categoryKey, productCacheTTL)

	pipe.LPush(ctx, "products:recent", product.ID)
	// Keep only the 100 most recent products
	pipe.LTrim(ctx, "products:recent", 0, 99)
	pipe.Expire(ctx, "products:recent", productCacheTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute Redis pipeline for product %s: %w", product.ID, err)
	}
	return nil
}

// AddProductsToCache caches each product individually.
func AddProductsToCache(ctx context.Context, products []*models.Product) error {
	for _, product := range products {
		if err := CacheSingleProduct(ctx, product); err != nil {
			return fmt.Errorf("failed to cache product %s: %w", product.ID, err)
		}
	}
	return nil
}

// GetProductFromCache retrieves a product by id; a cache miss surfaces as
// the underlying redis error.
func GetProductFromCache(ctx context.Context, productID string) (*models.Product, error) {
	client := RedisClient()
	defer client.Close()

	productKey := fmt.Sprintf("product:%s", productID)
	productJSON, err := client.Get(ctx, productKey).Result()
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal([]byte(productJSON), &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}
	return &product, nil
}

// RemoveProductFromCache drops a product and its list entries.
func RemoveProductFromCache(ctx context.Context, product *models.Product) error {
	client := RedisClient()
	defer client.Close()

	pipe := client.TxPipeline()

	pipe.Del(ctx, fmt.Sprintf("product:%s", product.ID))

	categoryKey := fmt.Sprintf("category:%s", product.Category)
	pipe.LRem(ctx, categoryKey, 0, product.ID)
	pipe.LRem(ctx, "products:recent", 0, product.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove product from Redis cache: %w", err)
	}
	return nil
}
