package application

import (
	"context"

	"go-citizen/internal/database"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// WorkflowHook is an admin-managed script evaluated after a decision
// commits for one service type. Hooks observe transitions; they can never
// fail or roll one back.
type WorkflowHook struct {
	ServiceType string `bson:"service_type" json:"service_type"`
	Script      string `bson:"script" json:"script"`
	Active      bool   `bson:"active" json:"active"`
}

type HookRepository interface {
	FindByService(ctx context.Context, serviceType string) (*WorkflowHook, error)
	Upsert(ctx context.Context, hook WorkflowHook) error
}

type HookRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewHookRepository(mongodb *database.MongodbDB) HookRepository {
	return &HookRepositoryImpl{
		Collection: mongodb.DB.Collection("workflow_hooks"),
	}
}

func (r *HookRepositoryImpl) FindByService(ctx context.Context, serviceType string) (*WorkflowHook, error) {
	var hook WorkflowHook
	err := r.Collection.FindOne(ctx, bson.M{"service_type": serviceType, "active": true}).Decode(&hook)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &hook, nil
}

func (r *HookRepositoryImpl) Upsert(ctx context.Context, hook WorkflowHook) error {
	_, err := r.Collection.UpdateOne(ctx,
		bson.M{"service_type": hook.ServiceType},
		bson.M{"$set": bson.M{"script": hook.Script, "active": hook.Active}},
		options.Update().SetUpsert(true))
	return err
}

// HookRunner executes the tengo script configured for a service type,
// exposing the committed transition as script variables.
type HookRunner struct {
	Repo   HookRepository
	Logger *zap.Logger
}

func NewHookRunner(repo HookRepository, logger *zap.Logger) *HookRunner {
	return &HookRunner{Repo: repo, Logger: logger}
}

func (r *HookRunner) OnTransition(ctx context.Context, app *Application, entry Decision) {
	hook, err := r.Repo.FindByService(ctx, app.ServiceType)
	if err != nil || hook == nil {
		return
	}

	script := tengo.NewScript([]byte(hook.Script))
	script.SetImports(stdlib.GetModuleMap("text", "times", "fmt"))
	_ = script.Add("app_id", app.ID.Hex())
	_ = script.Add("service_type", app.ServiceType)
	_ = script.Add("stage", string(entry.Stage))
	_ = script.Add("action", string(entry.Action))
	_ = script.Add("status", string(app.Status))
	_ = script.Add("actor", entry.ActorNIC)

	if _, err := script.RunContext(ctx); err != nil {
		r.Logger.Warn("workflow hook failed",
			zap.String("service_type", app.ServiceType),
			zap.String("application_id", app.ID.Hex()),
			zap.Error(err))
	}
}
