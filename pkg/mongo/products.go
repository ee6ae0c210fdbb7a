package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"stitchkart.in/storefront/api/pkg/global"
	"stitchkart.in/storefront/api/pkg/models"
)

var ErrProductNotFound = errors.New("product not found")

// Listing sort orders. PriceSort orders run on the status+price index.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

func listingSort(sortBy string) bson.D {
	switch sortBy {
	case SortPriceAsc:
		return bson.D{{Key: "price_minor", Value: 1}}
	case SortPriceDesc:
		return bson.D{{Key: "price_minor", Value: -1}}
	default:
		return bson.D{{Key: "created_at", Value: 1}}
	}
}

func GetAllProducts(ctx context.Context, sortBy string) ([]*models.Product, error) {
	collection := GetCollection("products")

	filter := bson.D{{Key: "status", Value: "active"}}
	cursor, err := collection.Find(ctx, filter, options.Find().SetSort(listingSort(sortBy)))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SearchProducts runs a text search over product names and categories,
// best matches first.
func SearchProducts(ctx context.Context, query string) ([]*models.Product, error) {
	collection := GetCollection("products")

	filter := bson.D{
		{Key: "status", Value: "active"},
		{Key: "$text", Value: bson.D{{Key: "$search", Value: query}}},
	}
	opts := options.Find().
		SetProjection(bson.D{{Key: "score", Value: bson.D{{Key: "$meta", Value: "textScore"}}}}).
		SetSort(bson.D{{Key: "score", Value: bson.D{{Key: "$meta", Value: "textScore"}}}})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []*models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func GetProductsByCategory(ctx context.Context, category, sortBy string) ([]*models.Product, error) {
	collection := GetCollection("products")

	filter := bson.D{
		{Key: "status", Value: "active"},
		{Key: "category", Value: category},
	}
	cursor, err := collection.Find(ctx, filter, options.Find().SetSort(listingSort(sortBy)))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	collection := GetCollection("products")

	var product models.Product
	err := collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func CreateProducts(ctx context.Context, products []*models.Product) ([]*models.Product, error) {
	collection := GetCollection("products")

	docs := make([]interface{}, len(products))
	for i, product := range products {
		product.SetTimestamps()
		docs[i] = product
	}

	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return nil, fmt.Errorf("failed to insert products: %w", err)
	}
	return products, nil
}

func UpdateProductByID(ctx context.Context, id string, updates map[string]interface{}) (*models.Product, error) {
	collection := GetCollection("products")

	updates["updated_at"] = time.Now()

	setDoc := bson.D{}
	for key, value := range updates {
		setDoc = append(setDoc, bson.E{Key: key, Value: value})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var product models.Product
	err := collection.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: setDoc}},
		opts,
	).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func DeleteProductByID(ctx context.Context, id string) (*models.Product, error) {
	collection := GetCollection("products")

	var product models.Product
	err := collection.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func GetAllCategories() ([]string, error) {
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()
	collection := GetCollection("products")

	var categories []string
	result := collection.Distinct(ctx, "category", bson.D{{Key: "status", Value: "active"}})
	if err := result.Decode(&categories); err != nil {
		return nil, err
	}
	return categories, nil
}
