package user

import (
	"time"

	common_models "go-citizen/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an actor in the administrative hierarchy. Placement fields are
// populated top-down and set once at creation; citizens never carry a
// ReportsTo and resolve their GS by section match instead.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName       string             `bson:"fullname" json:"fullname"`
	NIC            string             `bson:"nic" json:"nic"`
	Phone          string             `bson:"phone" json:"phone"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	HashedPassword string             `bson:"password" json:"-"`
	Role           common_models.Role `bson:"role" json:"role"`
	Province       string             `bson:"province,omitempty" json:"province,omitempty"`
	District       string             `bson:"district,omitempty" json:"district,omitempty"`
	Division       string             `bson:"division,omitempty" json:"division,omitempty"`
	Section        string             `bson:"section,omitempty" json:"section,omitempty"`
	ReportsTo      string             `bson:"reports_to,omitempty" json:"reports_to,omitempty"`
	Address        string             `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
