package policy

import (
	"context"

	"go-citizen/internal/common/apperr"
	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/features/audit"

	"go.uber.org/zap"
)

type PolicyService interface {
	// GetPolicy resolves the active approval policy for a service type.
	// An absent or inactive service is a request-validation failure, not a
	// workflow failure.
	GetPolicy(ctx context.Context, serviceType string) (*ServicePolicy, error)
	ListPolicies(ctx context.Context) ([]ServicePolicy, error)
	UpsertPolicy(ctx context.Context, actorNIC string, policy ServicePolicy) error
	UpdateTerms(ctx context.Context, actorNIC, id string, fee float64, days int, active bool) error
	// SeedDefaults inserts the bootstrap catalogue exactly once, when the
	// collection is empty.
	SeedDefaults(ctx context.Context) error
}

type PolicyServiceImpl struct {
	Repo         PolicyRepository
	AuditService audit.AuditService
	Logger       *zap.Logger
}

func NewPolicyService(repo PolicyRepository, auditService audit.AuditService, logger *zap.Logger) PolicyService {
	return &PolicyServiceImpl{Repo: repo, AuditService: auditService, Logger: logger}
}

func (s *PolicyServiceImpl) GetPolicy(ctx context.Context, serviceType string) (*ServicePolicy, error) {
	policy, err := s.Repo.FindByName(ctx, serviceType)
	if err != nil {
		return nil, err
	}
	if policy == nil || !policy.Active {
		return nil, apperr.Validation(apperr.CodeUnknownService, "unknown service type %q", serviceType)
	}
	return policy, nil
}

func (s *PolicyServiceImpl) ListPolicies(ctx context.Context) ([]ServicePolicy, error) {
	return s.Repo.List(ctx)
}

func (s *PolicyServiceImpl) UpsertPolicy(ctx context.Context, actorNIC string, policy ServicePolicy) error {
	if err := validateStages(policy.Stages); err != nil {
		return err
	}
	if policy.Name == "" {
		return apperr.Validation(apperr.CodeMalformedRequest, "service name is required")
	}

	if err := s.Repo.Upsert(ctx, policy); err != nil {
		return err
	}

	_ = s.AuditService.Log(ctx, common_models.AuditActionPolicy, "service", policy.Name, actorNIC, map[string]common_models.Change{
		"stages": {New: policy.Stages},
		"price":  {New: policy.Fee},
		"active": {New: policy.Active},
	})
	return nil
}

func (s *PolicyServiceImpl) UpdateTerms(ctx context.Context, actorNIC, id string, fee float64, days int, active bool) error {
	if err := s.Repo.UpdateByID(ctx, id, map[string]interface{}{
		"price": fee, "days": days, "active": active,
	}); err != nil {
		return err
	}
	_ = s.AuditService.Log(ctx, common_models.AuditActionPolicy, "service", id, actorNIC, map[string]common_models.Change{
		"price": {New: fee}, "days": {New: days}, "active": {New: active},
	})
	return nil
}

// validateStages enforces the policy invariant: non-empty and strictly
// ascending in hierarchy depth (no skipping downward).
func validateStages(stages []common_models.Role) error {
	if len(stages) == 0 {
		return apperr.Validation(apperr.CodeMalformedRequest, "policy stage list must not be empty")
	}
	prev := -1
	for _, stage := range stages {
		if !stage.IsStageRole() {
			return apperr.Validation(apperr.CodeMalformedRequest, "role %q cannot be an approval stage", stage)
		}
		depth := common_models.HierarchyDepth[stage]
		if depth <= prev {
			return apperr.Validation(apperr.CodeMalformedRequest, "stage list must ascend the hierarchy, %q is out of order", stage)
		}
		prev = depth
	}
	return nil
}

func (s *PolicyServiceImpl) SeedDefaults(ctx context.Context) error {
	count, err := s.Repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	s.Logger.Info("seeding default service policies")
	return s.Repo.InsertMany(ctx, DefaultPolicies())
}

// DefaultPolicies is the bootstrap service catalogue.
func DefaultPolicies() []ServicePolicy {
	gs := common_models.RoleGS
	ds := common_models.RoleDS
	district := common_models.RoleDistrict
	ministry := common_models.RoleMinistry

	return []ServicePolicy{
		{
			Name: "Passport Issue", Department: "Immigration",
			Stages: []common_models.Role{gs, ds, district, ministry},
			Fee:    20000, ProcessingDays: 30, Active: true,
			RequiredDocuments: []string{"Birth Certificate", "NIC Copy", "Photographs"},
		},
		{
			Name: "NIC Replacement", Department: "DRP",
			Stages: []common_models.Role{gs, ds},
			Fee:    2500, ProcessingDays: 7, Active: true,
			RequiredDocuments: []string{"Police Report", "Birth Certificate"},
		},
		{
			Name: "Birth Certificate", Department: "Registrar General",
			Stages: []common_models.Role{gs, ds},
			Fee:    1200, ProcessingDays: 1, Active: true,
			RequiredDocuments: []string{"Hospital Record"},
		},
		{
			Name: "Police Clearance", Department: "Police",
			Stages: []common_models.Role{gs, ds, district},
			Fee:    1500, ProcessingDays: 14, Active: true,
			RequiredDocuments: []string{"NIC Copy"},
		},
	}
}
