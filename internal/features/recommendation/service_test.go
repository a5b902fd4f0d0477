package recommendation

import (
	"context"
	"testing"

	"go-citizen/internal/features/product"
	"go-citizen/internal/features/user"
)

type fakeWalletSource struct {
	docs []user.WalletDocument
}

func (s *fakeWalletSource) CompletedForApplicant(ctx context.Context, nic string) ([]user.WalletDocument, error) {
	return s.docs, nil
}

type fakeProductService struct {
	captured []string
	products []product.Product
}

func (s *fakeProductService) ListAll(ctx context.Context) ([]product.Product, error) {
	return s.products, nil
}
func (s *fakeProductService) ListByTriggers(ctx context.Context, triggers []string) ([]product.Product, error) {
	s.captured = triggers
	return s.products, nil
}
func (s *fakeProductService) AddProduct(ctx context.Context, p product.Product) (string, error) {
	return "", nil
}

func TestDetectTriggersFromCompletedApplications(t *testing.T) {
	tests := []struct {
		name   string
		titles []string
		want   []string
	}{
		{"birth certificate", []string{"Birth Certificate"}, []string{"Birth"}},
		{"marriage", []string{"Marriage Registration"}, []string{"Marriage"}},
		{"vehicle", []string{"Vehicle Revenue License"}, []string{"Vehicle"}},
		{"mixed", []string{"Birth Certificate", "Marriage Registration"}, []string{"Birth", "Marriage"}},
		{"duplicates collapse", []string{"Birth Certificate", "Birth Certificate"}, []string{"Birth"}},
		{"no history", nil, []string{"General"}},
		{"unrelated services", []string{"Police Clearance"}, []string{"General"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var docs []user.WalletDocument
			for _, title := range tt.titles {
				docs = append(docs, user.WalletDocument{Title: title})
			}

			got := detectTriggers(docs)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestForCitizenQueriesProductsByTrigger(t *testing.T) {
	products := &fakeProductService{products: []product.Product{
		{Name: "Baby Care Pack", EventTrigger: "Birth"},
	}}
	svc := &RecommendationServiceImpl{
		Completed: &fakeWalletSource{docs: []user.WalletDocument{{Title: "Birth Certificate"}}},
		Products:  products,
	}

	recs, err := svc.ForCitizen(context.Background(), "900000000V")
	if err != nil {
		t.Fatalf("recommendation failed: %v", err)
	}
	if len(products.captured) != 1 || products.captured[0] != "Birth" {
		t.Errorf("expected products queried with [Birth], got %v", products.captured)
	}
	if len(recs.Products) != 1 {
		t.Errorf("expected 1 product, got %d", len(recs.Products))
	}
}

func TestForCitizenEmptyHistoryServesGeneral(t *testing.T) {
	products := &fakeProductService{}
	svc := &RecommendationServiceImpl{
		Completed: &fakeWalletSource{},
		Products:  products,
	}

	recs, err := svc.ForCitizen(context.Background(), "900000000V")
	if err != nil {
		t.Fatalf("recommendation failed: %v", err)
	}
	if len(recs.Triggers) != 1 || recs.Triggers[0] != "General" {
		t.Errorf("expected General trigger, got %v", recs.Triggers)
	}
	if recs.Products == nil {
		t.Error("products must be an empty list, not nil")
	}
}
