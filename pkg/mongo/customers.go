package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"stitchkart.in/storefront/api/pkg/models"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmailExists      = errors.New("email already exists")
)

func CreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	collection := GetCollection("customers")

	// Unique email is also enforced by index; check first for a clean error
	count, err := collection.CountDocuments(ctx, bson.D{{Key: "email", Value: customer.Email}})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailExists
	}

	result, err := collection.InsertOne(ctx, customer)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	if oid, ok := result.InsertedID.(bson.ObjectID); ok {
		customer.ID = oid
	}
	return customer, nil
}

func GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	collection := GetCollection("customers")

	var customer models.Customer
	err := collection.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func GetCustomerByID(ctx context.Context, id bson.ObjectID) (*models.Customer, error) {
	collection := GetCollection("customers")

	var customer models.Customer
	err := collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
