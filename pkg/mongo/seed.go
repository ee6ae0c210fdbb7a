package mongo

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"

	"stitchkart.in/storefront/api/pkg/models"
)

var sampleCatalog = []*models.Product{
	{ID: "p1", Name: "Classic Tee", Category: "Tops", PriceMinor: 799, OriginalPriceMinor: 999, Discount: "20% OFF", Sizes: []string{"S", "M", "L", "XL"}, Colors: []string{"Black", "White"}, ImageRef: "products/p1.png", InStock: true, Status: "active"},
	{ID: "p2", Name: "Slim Jeans", Category: "Bottoms", PriceMinor: 1999, Sizes: []string{"28", "30", "32", "34"}, Colors: []string{"Indigo", "Black"}, ImageRef: "products/p2.png", InStock: true, Status: "active"},
	{ID: "p3", Name: "Sneaker Run", Category: "Shoes", PriceMinor: 3499, Sizes: []string{"7", "8", "9", "10"}, Colors: []string{"White", "Grey"}, ImageRef: "products/p3.png", InStock: true, Status: "active"},
	{ID: "p4", Name: "Bomber Jacket", Category: "Outerwear", PriceMinor: 4599, OriginalPriceMinor: 5999, Discount: "23% OFF", Sizes: []string{"M", "L", "XL"}, Colors: []string{"Navy Blue", "Olive"}, Badge: "New", ImageRef: "products/p4.png", InStock: true, Status: "active"},
	{ID: "p5", Name: "Floral Dress", Category: "Dresses", PriceMinor: 2599, OriginalPriceMinor: 3299, Discount: "21% OFF", Sizes: []string{"S", "M"}, Colors: []string{"Pink"}, ImageRef: "products/p5.png", InStock: false, Status: "active"},
	{ID: "p6", Name: "Cap", Category: "Accessories", PriceMinor: 499, Sizes: []string{"Free"}, Colors: []string{"Black", "Red"}, ImageRef: "products/p6.png", InStock: true, Status: "active"},
	{ID: "p7", Name: "Casual Shirt", Category: "Tops", PriceMinor: 1099, Sizes: []string{"M", "L"}, Colors: []string{"Blue", "White"}, ImageRef: "products/p7.png", InStock: true, Status: "active"},
	{ID: "p8", Name: "Running Shorts", Category: "Bottoms", PriceMinor: 899, Sizes: []string{"S", "M", "L"}, Colors: []string{"Black"}, ImageRef: "products/p8.png", InStock: true, Status: "active"},
}

// SeedCatalogIfEmpty inserts the sample catalog on a fresh database so the
// storefront has something to sell out of the box.
func SeedCatalogIfEmpty(ctx context.Context) error {
	collection := GetCollection("products")

	count, err := collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if _, err := CreateProducts(ctx, sampleCatalog); err != nil {
		return err
	}
	log.Printf("Seeded catalog with %d sample products", len(sampleCatalog))
	return nil
}
