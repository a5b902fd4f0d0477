package application

import (
	"context"
	"time"

	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ApplicationRepository interface {
	Insert(ctx context.Context, app Application) (string, error)
	Get(ctx context.Context, id string) (*Application, error)
	Find(ctx context.Context, filter bson.M) ([]Application, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]bson.M, error)

	// Delete removes an application only while it is still non-terminal.
	// It reports false when no such document matched, so a withdrawal that
	// races a final decision never destroys a Completed record.
	Delete(ctx context.Context, id string) (bool, error)

	// ApplyDecision appends a chain entry and moves the stage in one atomic
	// conditional update: it matches only while the application is still
	// Pending at expectedStage. It returns (nil, nil) when no document
	// matched, which the engine maps to AlreadyTerminal / Escalated /
	// ConcurrentModification by re-reading the record.
	ApplyDecision(ctx context.Context, id string, expectedStage string, entry Decision, newStage string, newStatus common_models.ApplicationStatus) (*Application, error)

	SetCertificate(ctx context.Context, id, certificateID string) error
	SetEscalation(ctx context.Context, id string, esc Escalation) (*Application, error)
	ClearEscalation(ctx context.Context, id string) (*Application, error)
	EnsureIndexes(ctx context.Context) error
}

type ApplicationRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewApplicationRepository(mongodb *database.MongodbDB) ApplicationRepository {
	return &ApplicationRepositoryImpl{
		Collection: mongodb.DB.Collection("applications"),
	}
}

func (r *ApplicationRepositoryImpl) Insert(ctx context.Context, app Application) (string, error) {
	result, err := r.Collection.InsertOne(ctx, app)
	if err != nil {
		return "", err
	}
	oid := result.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *ApplicationRepositoryImpl) Get(ctx context.Context, id string) (*Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var app Application
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&app)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) Find(ctx context.Context, filter bson.M) ([]Application, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var apps []Application
	if err = cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepositoryImpl) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.Collection.CountDocuments(ctx, filter)
}

func (r *ApplicationRepositoryImpl) Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]bson.M, error) {
	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var results []bson.M
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ApplicationRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	filter := bson.M{
		"_id": oid,
		"status": bson.M{"$in": []common_models.ApplicationStatus{
			common_models.StatusPending,
			common_models.StatusEscalated,
		}},
	}
	result, err := r.Collection.DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (r *ApplicationRepositoryImpl) ApplyDecision(ctx context.Context, id string, expectedStage string, entry Decision, newStage string, newStatus common_models.ApplicationStatus) (*Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	filter := bson.M{
		"_id":           oid,
		"current_stage": expectedStage,
		"status":        common_models.StatusPending,
	}
	update := bson.M{
		"$push": bson.M{"chain": entry},
		"$set": bson.M{
			"current_stage": newStage,
			"status":        newStatus,
			"updated_at":    time.Now().UTC(),
		},
	}

	var updated Application
	err = r.Collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

func (r *ApplicationRepositoryImpl) SetCertificate(ctx context.Context, id, certificateID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$set": bson.M{"certificate_id": certificateID, "updated_at": time.Now().UTC()}})
	return err
}

func (r *ApplicationRepositoryImpl) SetEscalation(ctx context.Context, id string, esc Escalation) (*Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	filter := bson.M{"_id": oid, "status": common_models.StatusPending}
	update := bson.M{"$set": bson.M{
		"status":     common_models.StatusEscalated,
		"escalation": esc,
		"updated_at": time.Now().UTC(),
	}}
	var updated Application
	err = r.Collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

func (r *ApplicationRepositoryImpl) ClearEscalation(ctx context.Context, id string) (*Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	filter := bson.M{"_id": oid, "status": common_models.StatusEscalated}
	update := bson.M{
		"$set":   bson.M{"status": common_models.StatusPending, "updated_at": time.Now().UTC()},
		"$unset": bson.M{"escalation": ""},
	}
	var updated Application
	err = r.Collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

func (r *ApplicationRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "applicant_nic", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "current_stage", Value: 1}}},
	})
	return err
}
