package audit

import (
	"context"
	"time"

	common_models "go-citizen/internal/common/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type AuditService interface {
	Log(ctx context.Context, action common_models.AuditAction, entity, entityID, actorNIC string, changes map[string]common_models.Change) error
	ListRecent(ctx context.Context, limit int64) ([]common_models.AuditLog, error)
	ListForEntity(ctx context.Context, entity, entityID string) ([]common_models.AuditLog, error)
}

type AuditServiceImpl struct {
	Repo   AuditRepository
	Logger *zap.Logger
}

func NewAuditService(repo AuditRepository, logger *zap.Logger) AuditService {
	return &AuditServiceImpl{Repo: repo, Logger: logger}
}

func (s *AuditServiceImpl) Log(ctx context.Context, action common_models.AuditAction, entity, entityID, actorNIC string, changes map[string]common_models.Change) error {
	entry := common_models.AuditLog{
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		ActorNIC:  actorNIC,
		Changes:   changes,
		Timestamp: time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, entry); err != nil {
		// Audit persistence must not take down the caller
		s.Logger.Warn("failed to persist audit entry",
			zap.String("entity", entity),
			zap.String("entity_id", entityID),
			zap.Error(err))
		return err
	}
	return nil
}

func (s *AuditServiceImpl) ListRecent(ctx context.Context, limit int64) ([]common_models.AuditLog, error) {
	return s.Repo.List(ctx, bson.M{}, limit)
}

func (s *AuditServiceImpl) ListForEntity(ctx context.Context, entity, entityID string) ([]common_models.AuditLog, error) {
	return s.Repo.List(ctx, bson.M{"entity": entity, "entity_id": entityID}, 0)
}
