package controllers

import (
	"errors"
	"net/http"

	"github.com/rahulkhanna/dukaan/app/repositories"
	"github.com/rahulkhanna/dukaan/app/serializers"
	"github.com/rahulkhanna/dukaan/pkg/bind"
	"github.com/rahulkhanna/dukaan/pkg/collection"
	"github.com/rahulkhanna/dukaan/pkg/response"
	"github.com/rahulkhanna/dukaan/pkg/store"
)

type UserController struct {
	repo *repositories.UserRepository
	ser  *serializers.UserSerializer
}

func NewUserController(repo *repositories.UserRepository) *UserController {
	return &UserController{repo: repo, ser: serializers.NewUserSerializer()}
}

// Index — GET /users/
func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := c.repo.All(r.Context())
	if err != nil {
		internalError(w, r, "list users", err)
		return
	}
	response.Success(w, collection.Map(users, c.ser.ToArray))
}

// Store — POST /users/
func (c *UserController) Store(w http.ResponseWriter, r *http.Request) {
	var in serializers.UserInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.ser.ToModel(in)
	if err != nil {
		internalError(w, r, "hash password", err)
		return
	}

	if err := c.repo.Create(r.Context(), &user); err != nil {
		var dup *store.DuplicateKeyError
		if errors.As(err, &dup) {
			response.ValidationError(w, map[string]string{
				dup.Field: "The " + dup.Field + " has already been taken.",
			})
			return
		}
		internalError(w, r, "create user", err)
		return
	}

	response.Created(w, c.ser.ToArray(user))
}

// Show — GET /users/{id}/
func (c *UserController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	user, err := c.repo.Find(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		internalError(w, r, "find user", err)
		return
	}
	response.Success(w, c.ser.ToArray(user))
}

// Update — PUT /users/{id}/ (full replace)
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	// Existence is checked first: an unknown id is 404 no matter what
	// the payload looks like.
	if _, err := c.repo.Find(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(w)
			return
		}
		internalError(w, r, "find user", err)
		return
	}

	var in serializers.UserInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.ser.ToModel(in)
	if err != nil {
		internalError(w, r, "hash password", err)
		return
	}

	if err := c.repo.Replace(r.Context(), id, &user); err != nil {
		var dup *store.DuplicateKeyError
		if errors.As(err, &dup) {
			response.ValidationError(w, map[string]string{
				dup.Field: "The " + dup.Field + " has already been taken.",
			})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(w)
			return
		}
		internalError(w, r, "replace user", err)
		return
	}

	response.Success(w, c.ser.ToArray(user))
}

// Destroy — DELETE /users/{id}/
func (c *UserController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	deleted, err := c.repo.Delete(r.Context(), id)
	if err != nil {
		internalError(w, r, "delete user", err)
		return
	}
	if !deleted {
		response.NotFound(w)
		return
	}
	response.NoContent(w)
}
