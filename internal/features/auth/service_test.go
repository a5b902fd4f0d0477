package auth

import (
	"context"
	"testing"

	"go-citizen/internal/common/apperr"
	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/features/user"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users   map[string]*user.User
	created []user.User
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) error {
	r.created = append(r.created, u)
	return nil
}
func (r *fakeUserRepo) FindByNIC(ctx context.Context, nic string) (*user.User, error) {
	return r.users[nic], nil
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

type noopAudit struct{}

func (noopAudit) Log(ctx context.Context, action common_models.AuditAction, entity, entityID, actorNIC string, changes map[string]common_models.Change) error {
	return nil
}
func (noopAudit) ListRecent(ctx context.Context, limit int64) ([]common_models.AuditLog, error) {
	return nil, nil
}
func (noopAudit) ListForEntity(ctx context.Context, entity, entityID string) ([]common_models.AuditLog, error) {
	return nil, nil
}

func TestRegisterCitizen(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*user.User{}}
	svc := &AuthServiceImpl{UserRepo: repo, AuditService: noopAudit{}}

	err := svc.Register(context.Background(), RegisterInput{
		FullName: "A. Silva",
		NIC:      "900000000V",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatal("user was not created")
	}

	created := repo.created[0]
	if created.Role != common_models.RoleCitizen {
		t.Errorf("expected citizen role, got %s", created.Role)
	}
	if created.HashedPassword == "secret123" {
		t.Error("password must be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.HashedPassword), []byte("secret123")); err != nil {
		t.Error("stored hash does not verify against the password")
	}
}

func TestRegisterRejectsOfficerRole(t *testing.T) {
	svc := &AuthServiceImpl{UserRepo: &fakeUserRepo{users: map[string]*user.User{}}, AuditService: noopAudit{}}

	err := svc.Register(context.Background(), RegisterInput{
		FullName: "Sneaky",
		NIC:      "800000000V",
		Password: "secret123",
		Role:     common_models.RoleDS,
	})
	if !apperr.IsCode(err, apperr.CodeRoleNotPermitted) {
		t.Errorf("expected RoleNotPermitted, got %v", err)
	}
}

func TestRegisterDuplicateNIC(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*user.User{
		"900000000V": {NIC: "900000000V"},
	}}
	svc := &AuthServiceImpl{UserRepo: repo, AuditService: noopAudit{}}

	err := svc.Register(context.Background(), RegisterInput{
		FullName: "Again",
		NIC:      "900000000V",
		Password: "secret123",
	})
	if !apperr.IsCode(err, apperr.CodeDuplicateIdentity) {
		t.Errorf("expected DuplicateIdentity, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	repo := &fakeUserRepo{users: map[string]*user.User{
		"900000000V": {
			NIC:            "900000000V",
			FullName:       "A. Silva",
			Role:           common_models.RoleCitizen,
			HashedPassword: string(hash),
		},
	}}
	svc := &AuthServiceImpl{UserRepo: repo, AuditService: noopAudit{}}
	ctx := context.Background()

	result, err := svc.Login(ctx, LoginInput{NIC: "900000000V", Password: "secret123"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Error("expected a token")
	}
	if result.Role != common_models.RoleCitizen {
		t.Errorf("expected citizen role, got %s", result.Role)
	}

	_, err = svc.Login(ctx, LoginInput{NIC: "900000000V", Password: "wrong"})
	if !apperr.IsCode(err, apperr.CodeInvalidCredentials) {
		t.Errorf("expected InvalidCredentials for bad password, got %v", err)
	}

	_, err = svc.Login(ctx, LoginInput{NIC: "nobody", Password: "secret123"})
	if !apperr.IsCode(err, apperr.CodeInvalidCredentials) {
		t.Errorf("expected InvalidCredentials for unknown NIC, got %v", err)
	}
}
