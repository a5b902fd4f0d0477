package directory

import (
	"context"
	"testing"

	"go-citizen/internal/common/apperr"
	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/features/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// fakeUserRepo answers FindOne against a small in-memory slice, matching
// only the role/section/division keys the directory queries with.
type fakeUserRepo struct {
	users   []user.User
	created []user.User
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) error {
	r.created = append(r.created, u)
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) FindByNIC(ctx context.Context, nic string) (*user.User, error) {
	for i := range r.users {
		if r.users[i].NIC == nic {
			return &r.users[i], nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, filter bson.M) (*user.User, error) {
	for i := range r.users {
		u := &r.users[i]
		if role, ok := filter["role"]; ok && u.Role != role.(common_models.Role) {
			continue
		}
		if section, ok := filter["section"]; ok && u.Section != section.(string) {
			continue
		}
		if division, ok := filter["division"]; ok && u.Division != division.(string) {
			continue
		}
		return u, nil
	}
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

func newDirectory(repo *fakeUserRepo) *DirectoryServiceImpl {
	return &DirectoryServiceImpl{UserRepo: repo, Logger: zap.NewNop()}
}

func TestResolveInitialAssignmentFullChain(t *testing.T) {
	repo := &fakeUserRepo{users: []user.User{
		{NIC: "gs1", Role: common_models.RoleGS, Section: "620A", Division: "Homagama"},
		{NIC: "ds1", Role: common_models.RoleDS, Division: "Homagama"},
	}}
	svc := newDirectory(repo)

	applicant := &user.User{NIC: "c1", Role: common_models.RoleCitizen, Section: "620A"}
	assignment, err := svc.ResolveInitialAssignment(context.Background(), applicant)
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}
	if assignment.GS == nil || assignment.GS.NIC != "gs1" {
		t.Errorf("expected GS gs1, got %+v", assignment.GS)
	}
	if assignment.DS == nil || assignment.DS.NIC != "ds1" {
		t.Errorf("expected DS ds1, got %+v", assignment.DS)
	}
}

func TestResolveInitialAssignmentPartial(t *testing.T) {
	// GS exists but no DS covers the division
	repo := &fakeUserRepo{users: []user.User{
		{NIC: "gs1", Role: common_models.RoleGS, Section: "620A", Division: "Homagama"},
	}}
	svc := newDirectory(repo)

	applicant := &user.User{NIC: "c1", Section: "620A"}
	assignment, err := svc.ResolveInitialAssignment(context.Background(), applicant)
	if err != nil {
		t.Fatalf("resolution must not fail on a directory gap: %v", err)
	}
	if assignment.GS == nil {
		t.Error("expected GS to be resolved")
	}
	if assignment.DS != nil {
		t.Errorf("expected no DS, got %+v", assignment.DS)
	}
}

func TestResolveInitialAssignmentNoSection(t *testing.T) {
	svc := newDirectory(&fakeUserRepo{})

	assignment, err := svc.ResolveInitialAssignment(context.Background(), &user.User{NIC: "c1"})
	if err != nil {
		t.Fatalf("resolution must not fail: %v", err)
	}
	if assignment.GS != nil || assignment.DS != nil {
		t.Error("expected empty assignment for applicant without a section")
	}
}

func TestAddSubordinateRoleTable(t *testing.T) {
	tests := []struct {
		name        string
		creatorRole common_models.Role
		newRole     common_models.Role
		allowed     bool
	}{
		{"gs creates citizen", common_models.RoleGS, common_models.RoleCitizen, true},
		{"gs cannot create gs", common_models.RoleGS, common_models.RoleGS, false},
		{"ds creates gs", common_models.RoleDS, common_models.RoleGS, true},
		{"ds cannot create ds", common_models.RoleDS, common_models.RoleDS, false},
		{"district creates ds", common_models.RoleDistrict, common_models.RoleDS, true},
		{"ministry creates district", common_models.RoleMinistry, common_models.RoleDistrict, true},
		{"ministry cannot create citizen", common_models.RoleMinistry, common_models.RoleCitizen, false},
		{"admin creates ministry", common_models.RoleAdmin, common_models.RoleMinistry, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeUserRepo{users: []user.User{
				{NIC: "creator", Role: tt.creatorRole, Province: "Western", District: "Colombo", Division: "Homagama", Section: "620A"},
			}}
			svc := newDirectory(repo)

			created, err := svc.AddSubordinate(context.Background(), "creator", NewActor{
				FullName: "New Person",
				NIC:      "new1",
				Password: "secret123",
				Role:     tt.newRole,
			})

			if tt.allowed {
				if err != nil {
					t.Fatalf("expected creation to succeed, got %v", err)
				}
				if created.Province != "Western" || created.Division != "Homagama" {
					t.Errorf("placement must be inherited from the creator, got %+v", created)
				}
				if tt.newRole == common_models.RoleCitizen && created.ReportsTo != "" {
					t.Error("citizens must not carry reports_to")
				}
				if tt.newRole != common_models.RoleCitizen && created.ReportsTo != "creator" {
					t.Errorf("officer must report to the creator, got %q", created.ReportsTo)
				}
			} else {
				if !apperr.IsCode(err, apperr.CodeRoleNotPermitted) {
					t.Errorf("expected RoleNotPermitted, got %v", err)
				}
			}
		})
	}
}

func TestAddSubordinateDuplicateNIC(t *testing.T) {
	repo := &fakeUserRepo{users: []user.User{
		{NIC: "creator", Role: common_models.RoleGS},
		{NIC: "taken", Role: common_models.RoleCitizen},
	}}
	svc := newDirectory(repo)

	_, err := svc.AddSubordinate(context.Background(), "creator", NewActor{
		FullName: "Dup",
		NIC:      "taken",
		Password: "secret123",
		Role:     common_models.RoleCitizen,
	})
	if !apperr.IsCode(err, apperr.CodeDuplicateIdentity) {
		t.Errorf("expected DuplicateIdentity, got %v", err)
	}
}

func TestAddSubordinateDefaultsToCitizen(t *testing.T) {
	repo := &fakeUserRepo{users: []user.User{
		{NIC: "creator", Role: common_models.RoleGS, Section: "620A"},
	}}
	svc := newDirectory(repo)

	created, err := svc.AddSubordinate(context.Background(), "creator", NewActor{
		FullName: "Villager",
		NIC:      "v1",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("creation failed: %v", err)
	}
	if created.Role != common_models.RoleCitizen {
		t.Errorf("empty role must default to citizen, got %s", created.Role)
	}
	if created.HashedPassword == "secret123" {
		t.Error("password must be hashed before storage")
	}
}
