package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"stitchkart.in/storefront/api/pkg/models"
)

// AddToWishlist saves a product for a session. Saving the same product twice
// is a no-op thanks to the unique (session_id, product_id) index; the entry
// already stored is returned in that case.
func AddToWishlist(ctx context.Context, sessionID, productID string) (*models.WishlistEntry, error) {
	collection := GetCollection("wishlist")

	entry := &models.WishlistEntry{
		SessionID: sessionID,
		ProductID: productID,
		AddedAt:   time.Now(),
	}

	result, err := collection.InsertOne(ctx, entry)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			var existing models.WishlistEntry
			findErr := collection.FindOne(ctx, bson.D{
				{Key: "session_id", Value: sessionID},
				{Key: "product_id", Value: productID},
			}).Decode(&existing)
			if findErr != nil {
				return nil, findErr
			}
			return &existing, nil
		}
		return nil, err
	}

	if oid, ok := result.InsertedID.(bson.ObjectID); ok {
		entry.ID = oid
	}
	return entry, nil
}

// RemoveFromWishlist drops a saved product; absent entries are a no-op.
func RemoveFromWishlist(ctx context.Context, sessionID, productID string) error {
	collection := GetCollection("wishlist")

	_, err := collection.DeleteOne(ctx, bson.D{
		{Key: "session_id", Value: sessionID},
		{Key: "product_id", Value: productID},
	})
	return err
}

// GetWishlist returns a session's saved entries, newest first.
func GetWishlist(ctx context.Context, sessionID string) ([]models.WishlistEntry, error) {
	collection := GetCollection("wishlist")

	cursor, err := collection.Find(ctx,
		bson.D{{Key: "session_id", Value: sessionID}},
		options.Find().SetSort(bson.D{{Key: "added_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []models.WishlistEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetWishlistProducts resolves a session's wishlist to full catalog entries,
// skipping products that have since been removed.
func GetWishlistProducts(ctx context.Context, sessionID string) ([]*models.Product, error) {
	entries, err := GetWishlist(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	products := make([]*models.Product, 0, len(entries))
	for _, entry := range entries {
		product, err := GetProductByID(ctx, entry.ProductID)
		if errors.Is(err, ErrProductNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}
