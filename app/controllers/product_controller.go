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

type ProductController struct {
	repo *repositories.ProductRepository
	ser  *serializers.ProductSerializer
}

func NewProductController(repo *repositories.ProductRepository) *ProductController {
	return &ProductController{repo: repo, ser: serializers.NewProductSerializer()}
}

// Index — GET /products/
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.repo.All(r.Context())
	if err != nil {
		internalError(w, r, "list products", err)
		return
	}
	response.Success(w, collection.Map(products, c.ser.ToArray))
}

// Store — POST /products/
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var in serializers.ProductInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	product := c.ser.ToModel(in)
	if err := c.repo.Create(r.Context(), &product); err != nil {
		internalError(w, r, "create product", err)
		return
	}

	response.Created(w, c.ser.ToArray(product))
}

// Show — GET /products/{id}/
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	product, err := c.repo.Find(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		internalError(w, r, "find product", err)
		return
	}
	response.Success(w, c.ser.ToArray(product))
}

// Update — PUT /products/{id}/ (full replace)
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	if _, err := c.repo.Find(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(w)
			return
		}
		internalError(w, r, "find product", err)
		return
	}

	var in serializers.ProductInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	product := c.ser.ToModel(in)
	if err := c.repo.Replace(r.Context(), id, &product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(w)
			return
		}
		internalError(w, r, "replace product", err)
		return
	}

	response.Success(w, c.ser.ToArray(product))
}

// Destroy — DELETE /products/{id}/
//
// Orders referencing this product keep their reference; it expands to
// null on later reads.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	deleted, err := c.repo.Delete(r.Context(), id)
	if err != nil {
		internalError(w, r, "delete product", err)
		return
	}
	if !deleted {
		response.NotFound(w)
		return
	}
	response.NoContent(w)
}
