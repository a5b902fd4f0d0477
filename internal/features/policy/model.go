package policy

import (
	common_models "go-citizen/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServicePolicy is the per-service approval policy. The Stages list is the
// single source of truth for how many approval hops an application needs;
// the workflow engine never hard-codes stage counts.
type ServicePolicy struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name              string               `bson:"name" json:"name"`
	Department        string               `bson:"dept" json:"dept"`
	Stages            []common_models.Role `bson:"stages" json:"stages"`
	Fee               float64              `bson:"price" json:"price"`
	ProcessingDays    int                  `bson:"days" json:"days"`
	RequiredDocuments []string             `bson:"required_documents,omitempty" json:"required_documents,omitempty"`
	Active            bool                 `bson:"active" json:"active"`
}

// ApprovalLevel renders the stage list the way the original API exposed it,
// e.g. "gs_ds" or "gs_ds_district_ministry".
func (p ServicePolicy) ApprovalLevel() string {
	level := ""
	for i, stage := range p.Stages {
		if i > 0 {
			level += "_"
		}
		level += string(stage)
	}
	return level
}
