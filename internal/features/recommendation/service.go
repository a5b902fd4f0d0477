package recommendation

import (
	"context"
	"strings"

	"go-citizen/internal/features/product"
	"go-citizen/internal/features/user"
)

// Recommendations pairs the detected life-event triggers with the products
// matched against them.
type Recommendations struct {
	Triggers []string          `json:"triggers"`
	Products []product.Product `json:"products"`
}

type RecommendationService interface {
	ForCitizen(ctx context.Context, nic string) (*Recommendations, error)
}

type RecommendationServiceImpl struct {
	Completed user.WalletSource
	Products  product.ProductService
}

func NewRecommendationService(completed user.WalletSource, products product.ProductService) RecommendationService {
	return &RecommendationServiceImpl{Completed: completed, Products: products}
}

// ForCitizen infers life events from the citizen's completed applications and
// returns products tagged with a matching event trigger. With no history the
// "General" bucket is served.
func (s *RecommendationServiceImpl) ForCitizen(ctx context.Context, nic string) (*Recommendations, error) {
	docs, err := s.Completed.CompletedForApplicant(ctx, nic)
	if err != nil {
		return nil, err
	}

	triggers := detectTriggers(docs)

	products, err := s.Products.ListByTriggers(ctx, triggers)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []product.Product{}
	}

	return &Recommendations{Triggers: triggers, Products: products}, nil
}

func detectTriggers(docs []user.WalletDocument) []string {
	var triggers []string
	seen := map[string]bool{}

	add := func(t string) {
		if !seen[t] {
			seen[t] = true
			triggers = append(triggers, t)
		}
	}

	for _, doc := range docs {
		switch {
		case strings.Contains(doc.Title, "Birth"):
			add("Birth")
		case strings.Contains(doc.Title, "Marriage"):
			add("Marriage")
		case strings.Contains(doc.Title, "Vehicle"):
			add("Vehicle")
		}
	}

	if len(triggers) == 0 {
		triggers = []string{"General"}
	}
	return triggers
}
