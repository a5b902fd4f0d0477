package user

import (
	"context"

	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository interface {
	Create(ctx context.Context, user User) error
	FindByNIC(ctx context.Context, nic string) (*User, error)
	FindOne(ctx context.Context, filter bson.M) (*User, error)
	Find(ctx context.Context, filter bson.M) ([]User, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	UpdateByNIC(ctx context.Context, nic string, set bson.M) error
	DeleteByID(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type UserRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewUserRepository(mongodb *database.MongodbDB) UserRepository {
	return &UserRepositoryImpl{
		Collection: mongodb.DB.Collection("users"),
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user User) error {
	_, err := r.Collection.InsertOne(ctx, user)
	return err
}

func (r *UserRepositoryImpl) FindByNIC(ctx context.Context, nic string) (*User, error) {
	return r.FindOne(ctx, bson.M{"nic": nic})
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, filter bson.M) (*User, error) {
	var user User
	err := r.Collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Find(ctx context.Context, filter bson.M) ([]User, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var users []User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.Collection.CountDocuments(ctx, filter)
}

func (r *UserRepositoryImpl) UpdateByNIC(ctx context.Context, nic string, set bson.M) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"nic": nic}, bson.M{"$set": set})
	return err
}

func (r *UserRepositoryImpl) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *UserRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "nic", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "role", Value: 1}, {Key: "section", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "role", Value: 1}, {Key: "division", Value: 1}},
		},
	})
	return err
}

// Roles helper filters

// OfficerFilter matches every non-citizen account.
func OfficerFilter() bson.M {
	return bson.M{"role": bson.M{"$in": []common_models.Role{
		common_models.RoleGS,
		common_models.RoleDS,
		common_models.RoleDistrict,
		common_models.RoleMinistry,
		common_models.RoleAdmin,
	}}}
}
