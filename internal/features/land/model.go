package land

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// dispute lifecycle states
const (
	DisputeActive   = "Active"
	DisputeResolved = "Resolved"
)

// LandDispute is a register entry kept by the GS office for conflicts over
// land within the division.
type LandDispute struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	PartiesInvolved string             `bson:"parties_involved" json:"parties_involved"`
	Status          string             `bson:"status" json:"status"`
	Division        string             `bson:"division" json:"division"`
	RegisteredBy    string             `bson:"registered_by" json:"registered_by"`
	Date            time.Time          `bson:"date" json:"date"`
}
