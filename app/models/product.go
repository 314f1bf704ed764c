package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product represents a product in the catalogue.
type Product struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"` // optional, defaults to empty
	Price       float64            `bson:"price"`       // non-negative
}
