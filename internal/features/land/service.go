package land

import (
	"context"
	"strings"
	"time"

	"go-citizen/internal/common/apperr"
	"go-citizen/internal/features/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type DisputeInput struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	PartiesInvolved string `json:"parties_involved"`
}

type LandService interface {
	Register(ctx context.Context, actorNIC string, input DisputeInput) (string, error)
	List(ctx context.Context) ([]LandDispute, error)
	Resolve(ctx context.Context, id string) error
	ActiveCount(ctx context.Context) (int64, error)
}

type LandServiceImpl struct {
	Repo     LandRepository
	UserRepo user.UserRepository
	Logger   *zap.Logger
}

func NewLandService(repo LandRepository, userRepo user.UserRepository, logger *zap.Logger) LandService {
	return &LandServiceImpl{Repo: repo, UserRepo: userRepo, Logger: logger}
}

func (s *LandServiceImpl) Register(ctx context.Context, actorNIC string, input DisputeInput) (string, error) {
	if strings.TrimSpace(input.Title) == "" {
		return "", apperr.Validation(apperr.CodeMalformedRequest, "dispute title is required")
	}

	dispute := LandDispute{
		Title:           input.Title,
		Description:     input.Description,
		PartiesInvolved: input.PartiesInvolved,
		Status:          DisputeActive,
		RegisteredBy:    actorNIC,
		Date:            time.Now(),
	}

	// stamp the registering officer's division when known
	if officer, err := s.UserRepo.FindByNIC(ctx, actorNIC); err == nil && officer != nil {
		dispute.Division = officer.Division
	}

	id, err := s.Repo.Insert(ctx, dispute)
	if err != nil {
		return "", err
	}
	s.Logger.Info("land dispute registered",
		zap.String("id", id),
		zap.String("registered_by", actorNIC))
	return id, nil
}

func (s *LandServiceImpl) List(ctx context.Context) ([]LandDispute, error) {
	return s.Repo.List(ctx, bson.M{})
}

func (s *LandServiceImpl) Resolve(ctx context.Context, id string) error {
	matched, err := s.Repo.UpdateStatus(ctx, id, DisputeResolved)
	if err != nil {
		return err
	}
	if !matched {
		return apperr.NotFound("dispute %s not found", id)
	}
	return nil
}

func (s *LandServiceImpl) ActiveCount(ctx context.Context) (int64, error) {
	return s.Repo.Count(ctx, bson.M{"status": DisputeActive})
}
