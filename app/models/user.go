package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a shop customer record. The password is stored as a bcrypt
// hash and never serialised.
type User struct {
	ID           primitive.ObjectID `bson:"_id"`
	Username     string             `bson:"username"` // unique across the collection
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
}
