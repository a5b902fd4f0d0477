package policy

import (
	"context"

	"go-citizen/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PolicyRepository interface {
	FindByName(ctx context.Context, name string) (*ServicePolicy, error)
	List(ctx context.Context) ([]ServicePolicy, error)
	Upsert(ctx context.Context, policy ServicePolicy) error
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, policies []ServicePolicy) error
	UpdateByID(ctx context.Context, id string, set bson.M) error
}

type PolicyRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewPolicyRepository(mongodb *database.MongodbDB) PolicyRepository {
	return &PolicyRepositoryImpl{
		Collection: mongodb.DB.Collection("services"),
	}
}

func (r *PolicyRepositoryImpl) FindByName(ctx context.Context, name string) (*ServicePolicy, error) {
	var policy ServicePolicy
	err := r.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&policy)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &policy, nil
}

func (r *PolicyRepositoryImpl) List(ctx context.Context) ([]ServicePolicy, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var policies []ServicePolicy
	if err = cursor.All(ctx, &policies); err != nil {
		return nil, err
	}
	return policies, nil
}

func (r *PolicyRepositoryImpl) Upsert(ctx context.Context, policy ServicePolicy) error {
	filter := bson.M{"name": policy.Name}
	update := bson.M{"$set": bson.M{
		"dept":               policy.Department,
		"stages":             policy.Stages,
		"price":              policy.Fee,
		"days":               policy.ProcessingDays,
		"required_documents": policy.RequiredDocuments,
		"active":             policy.Active,
	}}
	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *PolicyRepositoryImpl) Count(ctx context.Context) (int64, error) {
	return r.Collection.CountDocuments(ctx, bson.M{})
}

func (r *PolicyRepositoryImpl) InsertMany(ctx context.Context, policies []ServicePolicy) error {
	docs := make([]interface{}, 0, len(policies))
	for _, p := range policies {
		docs = append(docs, p)
	}
	_, err := r.Collection.InsertMany(ctx, docs)
	return err
}

func (r *PolicyRepositoryImpl) UpdateByID(ctx context.Context, id string, set bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	return err
}
