package land

import (
	"context"

	"go-citizen/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LandRepository interface {
	Insert(ctx context.Context, d LandDispute) (string, error)
	List(ctx context.Context, filter bson.M) ([]LandDispute, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	UpdateStatus(ctx context.Context, id string, status string) (bool, error)
}

type LandRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewLandRepository(mongodb *database.MongodbDB) LandRepository {
	return &LandRepositoryImpl{
		Collection: mongodb.DB.Collection("land_disputes"),
	}
}

func (r *LandRepositoryImpl) Insert(ctx context.Context, d LandDispute) (string, error) {
	result, err := r.Collection.InsertOne(ctx, d)
	if err != nil {
		return "", err
	}
	oid := result.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *LandRepositoryImpl) List(ctx context.Context, filter bson.M) ([]LandDispute, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var disputes []LandDispute
	if err = cursor.All(ctx, &disputes); err != nil {
		return nil, err
	}
	return disputes, nil
}

func (r *LandRepositoryImpl) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.Collection.CountDocuments(ctx, filter)
}

func (r *LandRepositoryImpl) UpdateStatus(ctx context.Context, id string, status string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, err
	}
	result, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}
