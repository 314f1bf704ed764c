package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order links a user to an ordered list of products. Both references
// are non-owning: deleting the referenced user or products leaves the
// order in place.
type Order struct {
	ID         primitive.ObjectID   `bson:"_id"`
	UserID     primitive.ObjectID   `bson:"user"`
	ProductIDs []primitive.ObjectID `bson:"products"`   // submission order preserved
	CreatedAt  time.Time            `bson:"created_at"` // set once at insert
}
