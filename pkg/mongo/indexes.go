package mongo

import (
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"stitchkart.in/storefront/api/pkg/global"
)

type IndexConfig struct {
	CollectionName string
	IndexModel     mongo.IndexModel
}

var requiredIndexes = []IndexConfig{
	// Customers Collection Indexes
	{
		CollectionName: "customers",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_customer_email_unique"),
		},
	},

	// Products Collection Indexes
	// Index 1: Single-field index on category for filtering
	{
		CollectionName: "products",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("idx_category"),
		},
	},
	// Index 2: Compound index on status and price for sorted product listings
	{
		CollectionName: "products",
		IndexModel: mongo.IndexModel{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "price_minor", Value: -1},
			},
			Options: options.Index().SetName("idx_status_price"),
		},
	},
	// Index 3: Text index for product search
	{
		CollectionName: "products",
		IndexModel: mongo.IndexModel{
			Keys: bson.D{
				{Key: "name", Value: "text"},
				{Key: "category", Value: "text"},
			},
			Options: options.Index().
				SetName("idx_product_text_search").
				SetWeights(bson.D{
					{Key: "name", Value: 10},
					{Key: "category", Value: 5},
				}),
		},
	},

	// Wishlist Collection Indexes
	// Index 4: One entry per session/product pair
	{
		CollectionName: "wishlist",
		IndexModel: mongo.IndexModel{
			Keys: bson.D{
				{Key: "session_id", Value: 1},
				{Key: "product_id", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("idx_wishlist_unique"),
		},
	},
	// Index 5: Newest-first wishlist rendering
	{
		CollectionName: "wishlist",
		IndexModel: mongo.IndexModel{
			Keys: bson.D{
				{Key: "session_id", Value: 1},
				{Key: "added_at", Value: -1},
			},
			Options: options.Index().SetName("idx_wishlist_recent"),
		},
	},
}

func EnsureIndexes() error {
	log.Println("Starting index creation...")

	for _, idxConfig := range requiredIndexes {
		collection := GetCollection(idxConfig.CollectionName)
		ctx, cancel := global.GetDefaultTimer()
		defer cancel()

		indexName, err := collection.Indexes().CreateOne(ctx, idxConfig.IndexModel)
		if err != nil {
			log.Printf("Error creating index on collection %s: %v",
				idxConfig.CollectionName, err)
			return err
		}

		log.Printf("✓ Created index '%s' on collection '%s'", indexName, idxConfig.CollectionName)
	}

	log.Println("All indexes created successfully!")
	return nil
}

func EnsureIndexesOnStartup() {
	if err := EnsureIndexes(); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
}
