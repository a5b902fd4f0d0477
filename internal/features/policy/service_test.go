package policy

import (
	"context"
	"testing"

	"go-citizen/internal/common/apperr"
	common_models "go-citizen/internal/common/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type fakePolicyRepo struct {
	policies    map[string]*ServicePolicy
	insertCalls int
}

func (r *fakePolicyRepo) FindByName(ctx context.Context, name string) (*ServicePolicy, error) {
	return r.policies[name], nil
}
func (r *fakePolicyRepo) List(ctx context.Context) ([]ServicePolicy, error) {
	var out []ServicePolicy
	for _, p := range r.policies {
		out = append(out, *p)
	}
	return out, nil
}
func (r *fakePolicyRepo) Upsert(ctx context.Context, policy ServicePolicy) error {
	if r.policies == nil {
		r.policies = map[string]*ServicePolicy{}
	}
	r.policies[policy.Name] = &policy
	return nil
}
func (r *fakePolicyRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.policies)), nil
}
func (r *fakePolicyRepo) InsertMany(ctx context.Context, policies []ServicePolicy) error {
	if r.policies == nil {
		r.policies = map[string]*ServicePolicy{}
	}
	r.insertCalls++
	for i := range policies {
		r.policies[policies[i].Name] = &policies[i]
	}
	return nil
}
func (r *fakePolicyRepo) UpdateByID(ctx context.Context, id string, set bson.M) error { return nil }

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

func newPolicyService(repo *fakePolicyRepo) *PolicyServiceImpl {
	return &PolicyServiceImpl{Repo: repo, AuditService: noopAudit{}, Logger: zap.NewNop()}
}

func TestValidateStages(t *testing.T) {
	gs := common_models.RoleGS
	ds := common_models.RoleDS
	district := common_models.RoleDistrict
	ministry := common_models.RoleMinistry

	tests := []struct {
		name    string
		stages  []common_models.Role
		wantErr bool
	}{
		{"empty", nil, true},
		{"single stage", []common_models.Role{gs}, false},
		{"two stages", []common_models.Role{gs, ds}, false},
		{"full chain", []common_models.Role{gs, ds, district, ministry}, false},
		{"skipping upward is fine", []common_models.Role{gs, district}, false},
		{"descending", []common_models.Role{ds, gs}, true},
		{"duplicate stage", []common_models.Role{gs, gs}, true},
		{"citizen is not a stage", []common_models.Role{common_models.RoleCitizen, gs}, true},
		{"admin is not a stage", []common_models.Role{gs, common_models.RoleAdmin}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateStages(tt.stages)
			if tt.wantErr && err == nil {
				t.Errorf("expected %v to be rejected", tt.stages)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected %v to be accepted, got %v", tt.stages, err)
			}
		})
	}
}

func TestGetPolicyUnknownOrInactive(t *testing.T) {
	repo := &fakePolicyRepo{policies: map[string]*ServicePolicy{
		"Dormant Service": {Name: "Dormant Service", Stages: []common_models.Role{common_models.RoleGS}, Active: false},
	}}
	svc := newPolicyService(repo)
	ctx := context.Background()

	_, err := svc.GetPolicy(ctx, "No Such Service")
	if !apperr.IsCode(err, apperr.CodeUnknownService) {
		t.Errorf("expected UnknownService for missing policy, got %v", err)
	}

	_, err = svc.GetPolicy(ctx, "Dormant Service")
	if !apperr.IsCode(err, apperr.CodeUnknownService) {
		t.Errorf("expected UnknownService for inactive policy, got %v", err)
	}
}

func TestUpsertPolicyRejectsBadStages(t *testing.T) {
	svc := newPolicyService(&fakePolicyRepo{})

	err := svc.UpsertPolicy(context.Background(), "admin1", ServicePolicy{
		Name:   "Backwards Service",
		Stages: []common_models.Role{common_models.RoleDS, common_models.RoleGS},
		Active: true,
	})
	if !apperr.IsCode(err, apperr.CodeMalformedRequest) {
		t.Errorf("expected MalformedRequest, got %v", err)
	}
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	repo := &fakePolicyRepo{}
	svc := newPolicyService(repo)
	ctx := context.Background()

	if err := svc.SeedDefaults(ctx); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if repo.insertCalls != 1 {
		t.Fatalf("expected one insert, got %d", repo.insertCalls)
	}
	if len(repo.policies) != 4 {
		t.Errorf("expected 4 default policies, got %d", len(repo.policies))
	}

	if err := svc.SeedDefaults(ctx); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if repo.insertCalls != 1 {
		t.Errorf("second seed must be a no-op, got %d inserts", repo.insertCalls)
	}
}

func TestDefaultPoliciesAreValid(t *testing.T) {
	for _, pol := range DefaultPolicies() {
		if err := validateStages(pol.Stages); err != nil {
			t.Errorf("default policy %q has invalid stages: %v", pol.Name, err)
		}
		if !pol.Active {
			t.Errorf("default policy %q should be active", pol.Name)
		}
	}
}

func TestApprovalLevelRendering(t *testing.T) {
	pol := ServicePolicy{Stages: []common_models.Role{
		common_models.RoleGS, common_models.RoleDS,
		common_models.RoleDistrict, common_models.RoleMinistry,
	}}
	if got := pol.ApprovalLevel(); got != "gs_ds_district_ministry" {
		t.Errorf("expected gs_ds_district_ministry, got %q", got)
	}

	short := ServicePolicy{Stages: []common_models.Role{common_models.RoleGS, common_models.RoleDS}}
	if got := short.ApprovalLevel(); got != "gs_ds" {
		t.Errorf("expected gs_ds, got %q", got)
	}
}
