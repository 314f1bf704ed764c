// Package serializers is the representation layer: it translates
// between wire bodies and stored records. Inputs carry validate tags;
// ToArray methods control exactly which fields a record exposes.
package serializers

import (
	"github.com/rahulkhanna/dukaan/app/models"
	"github.com/rahulkhanna/dukaan/pkg/hash"
	"github.com/rahulkhanna/dukaan/pkg/resource"
)

// UserInput is the write representation of a user. The password is
// write-only: accepted here, hashed, and never emitted on read.
type UserInput struct {
	Username string `json:"username" validate:"required,alpha_dash,max=150"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserSerializer maps users between wire and record form.
type UserSerializer struct{}

func NewUserSerializer() *UserSerializer { return &UserSerializer{} }

// ToModel builds a User record from validated input, hashing the
// password so the raw value is never stored.
func (s *UserSerializer) ToModel(in UserInput) (models.User, error) {
	hashed, err := hash.Make(in.Password)
	if err != nil {
		return models.User{}, err
	}
	return models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hashed,
	}, nil
}

// ToArray is the read representation: id is read-only, password absent.
func (s *UserSerializer) ToArray(u models.User) resource.Map {
	return resource.Map{
		"id":       u.ID.Hex(),
		"username": u.Username,
		"email":    u.Email,
	}
}
