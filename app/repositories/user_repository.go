package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahulkhanna/dukaan/app/models"
	"github.com/rahulkhanna/dukaan/pkg/store"
)

// UsersCollection is the record store collection for users.
const UsersCollection = "users"

// UserRepository handles record store operations for User.
type UserRepository struct {
	store store.Store
}

func NewUserRepository(st store.Store) *UserRepository {
	return &UserRepository{store: st}
}

// All returns every user in store-native order.
func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.store.FindAll(ctx, UsersCollection, &users)
	return users, err
}

// Find looks up a user by id. A missing record surfaces as
// store.ErrNotFound, which callers treat as a normal outcome.
func (r *UserRepository) Find(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var user models.User
	err := r.store.FindByID(ctx, UsersCollection, id, &user)
	return user, err
}

// Create assigns a fresh id and persists the user. A username collision
// surfaces as *store.DuplicateKeyError.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	return r.store.Insert(ctx, UsersCollection, user)
}

// Replace overwrites every field of an existing user. The id is
// immutable and always taken from the path, never the payload.
func (r *UserRepository) Replace(ctx context.Context, id primitive.ObjectID, user *models.User) error {
	user.ID = id
	return r.store.Replace(ctx, UsersCollection, id, user)
}

// Delete removes the user if present and reports whether it existed.
func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return r.store.Delete(ctx, UsersCollection, id)
}
