package application

import (
	"time"

	common_models "go-citizen/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Decision is one entry of the approval chain. The chain is append-only:
// entries are never edited or removed, it is the audit trail of the
// application. ActorRole records the real acting role, so an admin override
// is distinguishable from a normal stage decision.
type Decision struct {
	Stage     common_models.Role           `bson:"stage" json:"stage"`
	ActorNIC  string                       `bson:"actor_nic" json:"actor_nic"`
	ActorRole common_models.Role           `bson:"actor_role" json:"actor_role"`
	Action    common_models.DecisionAction `bson:"action" json:"action"`
	Timestamp time.Time                    `bson:"timestamp" json:"timestamp"`
	Comments  string                       `bson:"comments,omitempty" json:"comments,omitempty"`
}

// Escalation is the side-channel freeze on an application. It never touches
// CurrentStage; de-escalation restores normal processing.
type Escalation struct {
	Reason   string    `bson:"reason" json:"reason"`
	Level    string    `bson:"level" json:"level"`
	RaisedBy string    `bson:"raised_by" json:"raised_by"`
	At       time.Time `bson:"at" json:"at"`
}

// Application is a citizen service request moving through its policy's
// approval stages. CurrentStage is always one of the policy's stage roles or
// the terminal marker "completed"; Status carries the terminal/escalated
// flags. Only the workflow engine mutates stage and chain.
type Application struct {
	ID            primitive.ObjectID              `bson:"_id,omitempty" json:"id"`
	ServiceType   string                          `bson:"service_type" json:"service_type"`
	ApplicantNIC  string                          `bson:"applicant_nic" json:"applicant_nic"`
	ApplicantName string                          `bson:"applicant_name" json:"applicant_name"`
	Details       map[string]string               `bson:"details" json:"details"`
	Status        common_models.ApplicationStatus `bson:"status" json:"status"`
	CurrentStage  string                          `bson:"current_stage" json:"current_stage"`
	Chain         []Decision                      `bson:"chain" json:"chain"`
	AssignedGS    string                          `bson:"assigned_gs,omitempty" json:"assigned_gs,omitempty"`
	AssignedDS    string                          `bson:"assigned_ds,omitempty" json:"assigned_ds,omitempty"`
	Escalation    *Escalation                     `bson:"escalation,omitempty" json:"escalation,omitempty"`
	CertificateID string                          `bson:"certificate_id,omitempty" json:"certificate_id,omitempty"`
	CreatedAt     time.Time                       `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time                       `bson:"updated_at" json:"updated_at"`
}

// Terminal reports whether no further advance is permitted.
func (a *Application) Terminal() bool {
	return a.Status == common_models.StatusCompleted || a.Status == common_models.StatusRejected
}

// DecisionInput is what an officer submits at a stage.
type DecisionInput struct {
	Action   common_models.DecisionAction `json:"action"`
	Comments string                       `json:"comments"`
}

// BatchResult reports best-effort batch approval counts. Individual failures
// are intentionally not itemized.
type BatchResult struct {
	ApprovedCount  int `json:"approved_count"`
	TotalRequested int `json:"total_requested"`
}
