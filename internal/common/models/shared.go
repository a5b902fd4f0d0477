package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the position of an actor in the administrative hierarchy.
type Role string

const (
	RoleCitizen  Role = "citizen"
	RoleGS       Role = "gs"
	RoleDS       Role = "ds"
	RoleDistrict Role = "district"
	RoleMinistry Role = "ministry"
	RoleAdmin    Role = "admin"
)

// HierarchyDepth orders roles from the bottom of the hierarchy upwards.
// Citizens sit below every approval stage; admin sits outside the chain.
var HierarchyDepth = map[Role]int{
	RoleCitizen:  0,
	RoleGS:       1,
	RoleDS:       2,
	RoleDistrict: 3,
	RoleMinistry: 4,
	RoleAdmin:    5,
}

// IsStageRole reports whether a role can appear in a policy stage list.
func (r Role) IsStageRole() bool {
	switch r {
	case RoleGS, RoleDS, RoleDistrict, RoleMinistry:
		return true
	}
	return false
}

// ApplicationStatus is the lifecycle state of a service application.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "Pending"
	StatusCompleted ApplicationStatus = "Completed"
	StatusRejected  ApplicationStatus = "Rejected"
	StatusEscalated ApplicationStatus = "Escalated"
)

// StageCompleted marks an application past its final approval stage.
const StageCompleted = "completed"

// DecisionAction is the outcome an officer records at a stage.
type DecisionAction string

const (
	ActionApproved DecisionAction = "Approved"
	ActionRejected DecisionAction = "Rejected"
)

type AuditAction string

const (
	AuditActionCreate     AuditAction = "CREATE"
	AuditActionUpdate     AuditAction = "UPDATE"
	AuditActionDelete     AuditAction = "DELETE"
	AuditActionLogin      AuditAction = "LOGIN"
	AuditActionApproval   AuditAction = "APPROVAL"
	AuditActionWithdraw   AuditAction = "WITHDRAW"
	AuditActionEscalation AuditAction = "ESCALATION"
	AuditActionPolicy     AuditAction = "POLICY"
)

type Change struct {
	Old interface{} `bson:"old" json:"old"`
	New interface{} `bson:"new" json:"new"`
}

// AuditLog records administrative and workflow actions outside the
// per-application approval chain.
type AuditLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Action    AuditAction        `bson:"action" json:"action"`
	Entity    string             `bson:"entity" json:"entity"`
	EntityID  string             `bson:"entity_id" json:"entity_id"`
	ActorNIC  string             `bson:"actor_nic" json:"actor_nic"`
	Changes   map[string]Change  `bson:"changes,omitempty" json:"changes,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// Log is a row written by the async zap writer into the logs collection.
type Log struct {
	AppId        string    `bson:"app_id" json:"app_id"`
	Message      string    `bson:"message" json:"message"`
	Level        string    `bson:"level" json:"level"`
	Caller       string    `bson:"caller" json:"caller"`
	IpAddress    string    `bson:"ip_address,omitempty" json:"ip_address,omitempty"`
	CreatedOnUtc time.Time `bson:"created_on_utc" json:"created_on_utc"`
}
