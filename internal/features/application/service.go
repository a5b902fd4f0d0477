package application

import (
	"context"
	"time"

	"go-citizen/internal/common/apperr"
	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/config"
	"go-citizen/internal/features/audit"
	"go-citizen/internal/features/certificate"
	"go-citizen/internal/features/directory"
	"go-citizen/internal/features/policy"
	"go-citizen/internal/features/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Actor is the engine's view of the caller: an opaque identity plus a role
// assertion. Token mechanics stay in the transport layer.
type Actor struct {
	NIC  string
	Role common_models.Role
}

type CreateResult struct {
	ID            string `json:"id"`
	ApprovalLevel string `json:"approval_level"`
	CurrentStage  string `json:"current_stage"`
	AssignedTo    string `json:"assigned_to,omitempty"`
}

// TransitionListener observes committed workflow transitions. Implemented by
// the notification feature; failures are the listener's problem, never the
// engine's.
type TransitionListener interface {
	ApplicationSubmitted(ctx context.Context, app *Application)
	DecisionRecorded(ctx context.Context, app *Application, entry Decision)
}

type ApplicationService interface {
	Create(ctx context.Context, actor Actor, serviceType string, details map[string]string) (*CreateResult, error)
	Advance(ctx context.Context, appID string, actor Actor, input DecisionInput) (*Application, error)
	BatchAdvance(ctx context.Context, appIDs []string, actor Actor) (BatchResult, error)
	Withdraw(ctx context.Context, appID string, actor Actor) error
	Queue(ctx context.Context, actor Actor) ([]Application, error)
	IssuedCertificates(ctx context.Context, actor Actor) ([]Application, error)
	MyApplications(ctx context.Context, actor Actor) ([]Application, error)
	Get(ctx context.Context, appID string) (*Application, error)
	Escalate(ctx context.Context, appID string, actor Actor, reason, level string) (*Application, error)
	Deescalate(ctx context.Context, appID string, actor Actor) (*Application, error)
	ReissueCertificate(ctx context.Context, appID string, actor Actor) (*Application, error)
	RetryMissingCertificates(ctx context.Context) (int, error)

	// CompletedForApplicant backs the digital wallet.
	CompletedForApplicant(ctx context.Context, nic string) ([]user.WalletDocument, error)
}

type ApplicationServiceImpl struct {
	Repo          ApplicationRepository
	PolicyService policy.PolicyService
	Directory     directory.DirectoryService
	UserRepo      user.UserRepository
	Issuer        certificate.Issuer
	AuditService  audit.AuditService
	Hooks         *HookRunner
	Listener      TransitionListener
	Logger        *zap.Logger

	// CertURL prefixes wallet download links, e.g. /api/applications
	CertURL string
}

func NewApplicationService(
	repo ApplicationRepository,
	policyService policy.PolicyService,
	dir directory.DirectoryService,
	userRepo user.UserRepository,
	issuer certificate.Issuer,
	auditService audit.AuditService,
	hooks *HookRunner,
	listener TransitionListener,
	cfg *config.Config,
	logger *zap.Logger,
) ApplicationService {
	return &ApplicationServiceImpl{
		Repo:          repo,
		PolicyService: policyService,
		Directory:     dir,
		UserRepo:      userRepo,
		Issuer:        issuer,
		AuditService:  auditService,
		Hooks:         hooks,
		Listener:      listener,
		Logger:        logger,
		CertURL:       cfg.CertURL,
	}
}

func (s *ApplicationServiceImpl) Create(ctx context.Context, actor Actor, serviceType string, details map[string]string) (*CreateResult, error) {
	if err := authorize(OpCreate, actor.Role); err != nil {
		return nil, err
	}

	pol, err := s.PolicyService.GetPolicy(ctx, serviceType)
	if err != nil {
		return nil, err
	}

	applicant, err := s.UserRepo.FindByNIC(ctx, actor.NIC)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, apperr.NotFound("applicant %s not found", actor.NIC)
	}

	// Directory gaps leave the assignment unset; they never block creation.
	assignment, err := s.Directory.ResolveInitialAssignment(ctx, applicant)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	app := Application{
		ServiceType:   serviceType,
		ApplicantNIC:  applicant.NIC,
		ApplicantName: applicant.FullName,
		Details:       details,
		Status:        common_models.StatusPending,
		CurrentStage:  string(pol.Stages[0]),
		Chain:         []Decision{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if assignment.GS != nil {
		app.AssignedGS = assignment.GS.NIC
	}
	if assignment.DS != nil {
		app.AssignedDS = assignment.DS.NIC
	}

	id, err := s.Repo.Insert(ctx, app)
	if err != nil {
		return nil, err
	}
	app.ID, _ = primitive.ObjectIDFromHex(id)

	_ = s.AuditService.Log(ctx, common_models.AuditActionCreate, "application", id, actor.NIC, nil)
	if s.Listener != nil {
		s.Listener.ApplicationSubmitted(ctx, &app)
	}

	result := &CreateResult{
		ID:            id,
		ApprovalLevel: pol.ApprovalLevel(),
		CurrentStage:  app.CurrentStage,
		AssignedTo:    app.AssignedGS,
	}
	return result, nil
}

// Advance runs one decision through the state machine. The chain append and
// stage move commit in a single conditional update, so two racing calls on
// the same starting stage produce exactly one new chain entry; the loser
// sees ConcurrentModification.
func (s *ApplicationServiceImpl) Advance(ctx context.Context, appID string, actor Actor, input DecisionInput) (*Application, error) {
	if err := authorize(OpAdvance, actor.Role); err != nil {
		return nil, err
	}
	if input.Action != common_models.ActionApproved && input.Action != common_models.ActionRejected {
		return nil, apperr.Validation(apperr.CodeMalformedRequest, "action must be Approved or Rejected")
	}

	app, err := s.Repo.Get(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, apperr.NotFound("application %s not found", appID)
	}

	if err := s.guard(app, actor); err != nil {
		return nil, err
	}

	pol, err := s.PolicyService.GetPolicy(ctx, app.ServiceType)
	if err != nil {
		return nil, err
	}

	stageIdx := stageIndex(pol.Stages, app.CurrentStage)
	if stageIdx < 0 {
		return nil, apperr.Validation(apperr.CodeMalformedRequest,
			"stage %q is not part of the %q policy", app.CurrentStage, pol.Name)
	}

	newStage := app.CurrentStage
	newStatus := common_models.StatusRejected
	if input.Action == common_models.ActionApproved {
		if stageIdx+1 < len(pol.Stages) {
			newStage = string(pol.Stages[stageIdx+1])
			newStatus = common_models.StatusPending
		} else {
			newStage = common_models.StageCompleted
			newStatus = common_models.StatusCompleted
		}
	}

	entry := Decision{
		Stage:     common_models.Role(app.CurrentStage),
		ActorNIC:  actor.NIC,
		ActorRole: actor.Role,
		Action:    input.Action,
		Timestamp: time.Now().UTC(),
		Comments:  input.Comments,
	}

	updated, err := s.Repo.ApplyDecision(ctx, appID, app.CurrentStage, entry, newStage, newStatus)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, s.explainLostUpdate(ctx, appID)
	}

	if updated.Status == common_models.StatusCompleted {
		s.issueCertificate(ctx, updated)
	}

	_ = s.AuditService.Log(ctx, common_models.AuditActionApproval, "application", appID, actor.NIC, map[string]common_models.Change{
		"stage":  {Old: app.CurrentStage, New: updated.CurrentStage},
		"status": {Old: app.Status, New: updated.Status},
		"action": {New: input.Action},
	})

	s.Hooks.OnTransition(ctx, updated, entry)
	if s.Listener != nil {
		s.Listener.DecisionRecorded(ctx, updated, entry)
	}

	return updated, nil
}

// guard rejects decisions on frozen applications and enforces the stage/role
// match. Admin may act at any non-terminal stage; the override is visible in
// the chain through ActorRole.
func (s *ApplicationServiceImpl) guard(app *Application, actor Actor) error {
	if app.Terminal() {
		return apperr.Conflict(apperr.CodeAlreadyTerminal,
			"application %s is already %s", app.ID.Hex(), app.Status)
	}
	if app.Status == common_models.StatusEscalated {
		return apperr.Conflict(apperr.CodeApplicationEscalated,
			"application %s is frozen by escalation", app.ID.Hex())
	}
	if actor.Role != common_models.RoleAdmin && string(actor.Role) != app.CurrentStage {
		return apperr.Authorization(apperr.CodeStageMismatch,
			"application is at stage %s, actor role is %s", app.CurrentStage, actor.Role)
	}
	return nil
}

// explainLostUpdate re-reads an application after a conditional update
// matched nothing, to report why.
func (s *ApplicationServiceImpl) explainLostUpdate(ctx context.Context, appID string) error {
	current, err := s.Repo.Get(ctx, appID)
	if err != nil {
		return err
	}
	if current == nil {
		return apperr.NotFound("application %s not found", appID)
	}
	if current.Terminal() {
		return apperr.Conflict(apperr.CodeAlreadyTerminal,
			"application %s is already %s", appID, current.Status)
	}
	if current.Status == common_models.StatusEscalated {
		return apperr.Conflict(apperr.CodeApplicationEscalated,
			"application %s is frozen by escalation", appID)
	}
	return apperr.Conflict(apperr.CodeConcurrentModification,
		"application %s was modified concurrently", appID)
}

// issueCertificate invokes the issuer synchronously. Failure leaves the
// application Completed with no artifact reference; re-issuance reads the
// Completed record later.
func (s *ApplicationServiceImpl) issueCertificate(ctx context.Context, app *Application) {
	serial, err := s.Issuer.Issue(ctx, app.ID.Hex(), app.ApplicantName, app.ApplicantNIC, app.ServiceType)
	if err != nil {
		s.Logger.Warn("certificate issuance failed, application stays Completed",
			zap.String("application_id", app.ID.Hex()),
			zap.Error(err))
		return
	}
	if err := s.Repo.SetCertificate(ctx, app.ID.Hex(), serial); err != nil {
		s.Logger.Warn("failed to store certificate reference",
			zap.String("application_id", app.ID.Hex()),
			zap.Error(err))
		return
	}
	app.CertificateID = serial
}

// BatchAdvance approves each application independently. Per-item failures
// are swallowed: the batch is best effort and only reports counts.
func (s *ApplicationServiceImpl) BatchAdvance(ctx context.Context, appIDs []string, actor Actor) (BatchResult, error) {
	result := BatchResult{TotalRequested: len(appIDs)}

	if err := authorize(OpBatchAdvance, actor.Role); err != nil {
		return result, err
	}

	for _, id := range appIDs {
		_, err := s.Advance(ctx, id, actor, DecisionInput{
			Action:   common_models.ActionApproved,
			Comments: "Batch approval",
		})
		if err != nil {
			s.Logger.Debug("batch approval skipped item",
				zap.String("application_id", id),
				zap.Error(err))
			continue
		}
		result.ApprovedCount++
	}
	return result, nil
}

// Withdraw removes a non-terminal application entirely. The owning citizen
// or any actor at or above the current stage may withdraw. The deletion is
// recorded in the audit log, not in the (destroyed) chain.
func (s *ApplicationServiceImpl) Withdraw(ctx context.Context, appID string, actor Actor) error {
	if err := authorize(OpWithdraw, actor.Role); err != nil {
		return err
	}

	app, err := s.Repo.Get(ctx, appID)
	if err != nil {
		return err
	}
	if app == nil {
		return apperr.NotFound("application %s not found", appID)
	}
	if app.Terminal() {
		return apperr.Conflict(apperr.CodeAlreadyTerminal,
			"application %s is already %s", appID, app.Status)
	}

	if actor.Role != common_models.RoleAdmin && actor.NIC != app.ApplicantNIC {
		stageDepth := common_models.HierarchyDepth[common_models.Role(app.CurrentStage)]
		if common_models.HierarchyDepth[actor.Role] < stageDepth {
			return apperr.Authorization(apperr.CodeRoleNotPermitted,
				"role %s is below the current stage %s", actor.Role, app.CurrentStage)
		}
	}

	deleted, err := s.Repo.Delete(ctx, appID)
	if err != nil {
		return err
	}
	if !deleted {
		// lost a race between the read above and the conditional delete
		app, err := s.Repo.Get(ctx, appID)
		if err != nil {
			return err
		}
		if app == nil {
			return apperr.NotFound("application %s not found", appID)
		}
		return apperr.Conflict(apperr.CodeAlreadyTerminal,
			"application %s is already %s", appID, app.Status)
	}

	_ = s.AuditService.Log(ctx, common_models.AuditActionWithdraw, "application", appID, actor.NIC, map[string]common_models.Change{
		"service_type": {Old: app.ServiceType},
		"stage":        {Old: app.CurrentStage},
	})
	return nil
}

// Queue lists Pending applications waiting at the actor's stage; admin sees
// every Pending application.
func (s *ApplicationServiceImpl) Queue(ctx context.Context, actor Actor) ([]Application, error) {
	if err := authorize(OpQueue, actor.Role); err != nil {
		return nil, err
	}

	filter := bson.M{"status": common_models.StatusPending}
	if actor.Role != common_models.RoleAdmin {
		filter["current_stage"] = string(actor.Role)
	}
	return s.Repo.Find(ctx, filter)
}

// IssuedCertificates lists every Completed application for the officer
// console's issued-documents view.
func (s *ApplicationServiceImpl) IssuedCertificates(ctx context.Context, actor Actor) ([]Application, error) {
	if err := authorize(OpIssuedList, actor.Role); err != nil {
		return nil, err
	}
	return s.Repo.Find(ctx, bson.M{"status": common_models.StatusCompleted})
}

func (s *ApplicationServiceImpl) MyApplications(ctx context.Context, actor Actor) ([]Application, error) {
	return s.Repo.Find(ctx, bson.M{"applicant_nic": actor.NIC})
}

func (s *ApplicationServiceImpl) Get(ctx context.Context, appID string) (*Application, error) {
	app, err := s.Repo.Get(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, apperr.NotFound("application %s not found", appID)
	}
	return app, nil
}

// Escalate freezes an application without touching its stage.
func (s *ApplicationServiceImpl) Escalate(ctx context.Context, appID string, actor Actor, reason, level string) (*Application, error) {
	if err := authorize(OpEscalate, actor.Role); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, apperr.Validation(apperr.CodeMalformedRequest, "escalation reason is required")
	}

	app, err := s.Repo.Get(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, apperr.NotFound("application %s not found", appID)
	}
	if app.Terminal() {
		return nil, apperr.Conflict(apperr.CodeAlreadyTerminal,
			"application %s is already %s", appID, app.Status)
	}

	updated, err := s.Repo.SetEscalation(ctx, appID, Escalation{
		Reason:   reason,
		Level:    level,
		RaisedBy: actor.NIC,
		At:       time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, s.explainLostUpdate(ctx, appID)
	}

	_ = s.AuditService.Log(ctx, common_models.AuditActionEscalation, "application", appID, actor.NIC, map[string]common_models.Change{
		"reason": {New: reason},
		"level":  {New: level},
	})
	return updated, nil
}

// Deescalate resumes normal processing. Admin only.
func (s *ApplicationServiceImpl) Deescalate(ctx context.Context, appID string, actor Actor) (*Application, error) {
	if err := authorize(OpDeescalate, actor.Role); err != nil {
		return nil, err
	}

	updated, err := s.Repo.ClearEscalation(ctx, appID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		app, err := s.Repo.Get(ctx, appID)
		if err != nil {
			return nil, err
		}
		if app == nil {
			return nil, apperr.NotFound("application %s not found", appID)
		}
		return nil, apperr.Conflict(apperr.CodeNotEscalated,
			"application %s is not escalated", appID)
	}

	_ = s.AuditService.Log(ctx, common_models.AuditActionEscalation, "application", appID, actor.NIC, map[string]common_models.Change{
		"status": {Old: common_models.StatusEscalated, New: common_models.StatusPending},
	})
	return updated, nil
}

// ReissueCertificate retries artifact generation for an application that
// completed while issuance was failing.
func (s *ApplicationServiceImpl) ReissueCertificate(ctx context.Context, appID string, actor Actor) (*Application, error) {
	app, err := s.Repo.Get(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, apperr.NotFound("application %s not found", appID)
	}
	if app.Status != common_models.StatusCompleted {
		return nil, apperr.Conflict(apperr.CodeAlreadyTerminal,
			"application %s is not Completed", appID)
	}

	s.issueCertificate(ctx, app)
	return app, nil
}

// RetryMissingCertificates issues documents for Completed applications whose
// synchronous issuance failed. Called by the scheduler, no actor involved.
func (s *ApplicationServiceImpl) RetryMissingCertificates(ctx context.Context) (int, error) {
	apps, err := s.Repo.Find(ctx, bson.M{
		"status":         common_models.StatusCompleted,
		"certificate_id": "",
	})
	if err != nil {
		return 0, err
	}

	issued := 0
	for i := range apps {
		app := &apps[i]
		if app.Status != common_models.StatusCompleted || app.CertificateID != "" {
			continue
		}
		s.issueCertificate(ctx, app)
		if app.CertificateID != "" {
			issued++
		}
	}
	return issued, nil
}

func (s *ApplicationServiceImpl) CompletedForApplicant(ctx context.Context, nic string) ([]user.WalletDocument, error) {
	apps, err := s.Repo.Find(ctx, bson.M{
		"applicant_nic": nic,
		"status":        common_models.StatusCompleted,
	})
	if err != nil {
		return nil, err
	}

	docs := make([]user.WalletDocument, 0, len(apps))
	for _, app := range apps {
		docs = append(docs, user.WalletDocument{
			ID:          app.ID.Hex(),
			Title:       app.ServiceType,
			IssuedDate:  app.UpdatedAt.Format(time.RFC3339),
			Issuer:      "Govt of Sri Lanka",
			Type:        "Official",
			DownloadURL: s.CertURL + "/" + app.ID.Hex() + "/download",
		})
	}
	return docs, nil
}

func stageIndex(stages []common_models.Role, current string) int {
	for i, stage := range stages {
		if string(stage) == current {
			return i
		}
	}
	return -1
}
