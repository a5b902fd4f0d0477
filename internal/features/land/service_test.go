package land

import (
	"context"
	"testing"

	"go-citizen/internal/common/apperr"
	"go-citizen/internal/features/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type fakeLandRepo struct {
	inserted []LandDispute
	resolved []string
	missing  bool
}

func (r *fakeLandRepo) Insert(ctx context.Context, d LandDispute) (string, error) {
	r.inserted = append(r.inserted, d)
	return "dispute1", nil
}
func (r *fakeLandRepo) List(ctx context.Context, filter bson.M) ([]LandDispute, error) {
	return r.inserted, nil
}
func (r *fakeLandRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	return int64(len(r.inserted)), nil
}
func (r *fakeLandRepo) UpdateStatus(ctx context.Context, id string, status string) (bool, error) {
	if r.missing {
		return false, nil
	}
	r.resolved = append(r.resolved, id)
	return true, nil
}

type fakeUserRepo struct {
	officer *user.User
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) error { return nil }
func (r *fakeUserRepo) FindByNIC(ctx context.Context, nic string) (*user.User, error) {
	return r.officer, nil
}
func (r *fakeUserRepo) FindOne(ctx context.Context, filter bson.M) (*user.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Find(ctx context.Context, filter bson.M) ([]user.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Count(ctx context.Context, filter bson.M) (int64, error) { return 0, nil }
func (r *fakeUserRepo) UpdateByNIC(ctx context.Context, nic string, set bson.M) error {
	return nil
}
func (r *fakeUserRepo) DeleteByID(ctx context.Context, id string) error { return nil }
func (r *fakeUserRepo) EnsureIndexes(ctx context.Context) error         { return nil }

func TestRegisterStampsOfficerDivision(t *testing.T) {
	repo := &fakeLandRepo{}
	svc := &LandServiceImpl{
		Repo:     repo,
		UserRepo: &fakeUserRepo{officer: &user.User{NIC: "gs1", Division: "Homagama"}},
		Logger:   zap.NewNop(),
	}

	id, err := svc.Register(context.Background(), "gs1", DisputeInput{
		Title:           "Boundary conflict",
		Description:     "Fence moved over the boundary line",
		PartiesInvolved: "A. Silva vs B. Perera",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if id != "dispute1" {
		t.Errorf("unexpected id %q", id)
	}

	stored := repo.inserted[0]
	if stored.Status != DisputeActive {
		t.Errorf("new disputes must start Active, got %q", stored.Status)
	}
	if stored.Division != "Homagama" {
		t.Errorf("expected officer division stamped, got %q", stored.Division)
	}
	if stored.RegisteredBy != "gs1" {
		t.Errorf("expected registering officer recorded, got %q", stored.RegisteredBy)
	}
}

func TestRegisterRequiresTitle(t *testing.T) {
	svc := &LandServiceImpl{
		Repo:     &fakeLandRepo{},
		UserRepo: &fakeUserRepo{},
		Logger:   zap.NewNop(),
	}

	_, err := svc.Register(context.Background(), "gs1", DisputeInput{Title: "   "})
	if !apperr.IsCode(err, apperr.CodeMalformedRequest) {
		t.Errorf("expected MalformedRequest, got %v", err)
	}
}

func TestResolveUnknownDispute(t *testing.T) {
	svc := &LandServiceImpl{
		Repo:     &fakeLandRepo{missing: true},
		UserRepo: &fakeUserRepo{},
		Logger:   zap.NewNop(),
	}

	err := svc.Resolve(context.Background(), "nope")
	if !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
}
