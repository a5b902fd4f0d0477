package product

import (
	"context"

	"go-citizen/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepository interface {
	Insert(ctx context.Context, p Product) (string, error)
	List(ctx context.Context, filter bson.M) ([]Product, error)
}

type ProductRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewProductRepository(mongodb *database.MongodbDB) ProductRepository {
	return &ProductRepositoryImpl{
		Collection: mongodb.DB.Collection("products"),
	}
}

func (r *ProductRepositoryImpl) Insert(ctx context.Context, p Product) (string, error) {
	result, err := r.Collection.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	oid := result.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *ProductRepositoryImpl) List(ctx context.Context, filter bson.M) ([]Product, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var products []Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
