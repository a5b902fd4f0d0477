package product

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a marketplace item surfaced to citizens, optionally tied to a
// life event (e.g. "Birth") for recommendations.
type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Category     string             `bson:"category" json:"category"`
	Price        float64            `bson:"price" json:"price"`
	Image        string             `bson:"image" json:"image"`
	EventTrigger string             `bson:"event_trigger" json:"event_trigger"`
	Stock        int                `bson:"stock" json:"stock"`
}
