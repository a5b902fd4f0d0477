package product

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type ProductService interface {
	ListAll(ctx context.Context) ([]Product, error)
	ListByTriggers(ctx context.Context, triggers []string) ([]Product, error)
	AddProduct(ctx context.Context, p Product) (string, error)
}

type ProductServiceImpl struct {
	Repo   ProductRepository
	Logger *zap.Logger
}

func NewProductService(repo ProductRepository, logger *zap.Logger) ProductService {
	return &ProductServiceImpl{Repo: repo, Logger: logger}
}

func (s *ProductServiceImpl) ListAll(ctx context.Context) ([]Product, error) {
	return s.Repo.List(ctx, bson.M{})
}

func (s *ProductServiceImpl) ListByTriggers(ctx context.Context, triggers []string) ([]Product, error) {
	return s.Repo.List(ctx, bson.M{"event_trigger": bson.M{"$in": triggers}})
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, p Product) (string, error) {
	id, err := s.Repo.Insert(ctx, p)
	if err != nil {
		return "", err
	}
	s.Logger.Info("product added", zap.String("name", p.Name), zap.String("id", id))
	return id, nil
}
