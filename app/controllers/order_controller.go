package controllers

import (
	"errors"
	"net/http"

	"github.com/rahulkhanna/dukaan/app/models"
	"github.com/rahulkhanna/dukaan/app/repositories"
	"github.com/rahulkhanna/dukaan/app/serializers"
	"github.com/rahulkhanna/dukaan/pkg/bind"
	"github.com/rahulkhanna/dukaan/pkg/resource"
	"github.com/rahulkhanna/dukaan/pkg/response"
	"github.com/rahulkhanna/dukaan/pkg/store"
)

type OrderController struct {
	repo *repositories.OrderRepository
	ser  *serializers.OrderSerializer
}

func NewOrderController(repo *repositories.OrderRepository, ser *serializers.OrderSerializer) *OrderController {
	return &OrderController{repo: repo, ser: ser}
}

// Index — GET /orders/
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	orders, err := c.repo.All(r.Context())
	if err != nil {
		internalError(w, r, "list orders", err)
		return
	}

	out := resource.NewList(len(orders))
	for _, o := range orders {
		body, err := c.ser.ToArray(r.Context(), o)
		if err != nil {
			internalError(w, r, "expand order", err)
			return
		}
		out = append(out, body)
	}
	response.Success(w, out)
}

// Store — POST /orders/
func (c *OrderController) Store(w http.ResponseWriter, r *http.Request) {
	order, ok := c.bindAndResolve(w, r)
	if !ok {
		return
	}

	if err := c.repo.Create(r.Context(), &order); err != nil {
		internalError(w, r, "create order", err)
		return
	}

	body, err := c.ser.ToArray(r.Context(), order)
	if err != nil {
		internalError(w, r, "expand order", err)
		return
	}
	response.Created(w, body)
}

// Show — GET /orders/{id}/
func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	order, err := c.repo.Find(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		internalError(w, r, "find order", err)
		return
	}

	body, err := c.ser.ToArray(r.Context(), order)
	if err != nil {
		internalError(w, r, "expand order", err)
		return
	}
	response.Success(w, body)
}

// Update — PUT /orders/{id}/ (full replace of the references;
// created_at stays as stamped at creation)
func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
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
		internalError(w, r, "find order", err)
		return
	}

	order, ok := c.bindAndResolve(w, r)
	if !ok {
		return
	}

	if err := c.repo.Replace(r.Context(), id, &order); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(w)
			return
		}
		internalError(w, r, "replace order", err)
		return
	}

	body, err := c.ser.ToArray(r.Context(), order)
	if err != nil {
		internalError(w, r, "expand order", err)
		return
	}
	response.Success(w, body)
}

// Destroy — DELETE /orders/{id}/
func (c *OrderController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	deleted, err := c.repo.Delete(r.Context(), id)
	if err != nil {
		internalError(w, r, "delete order", err)
		return
	}
	if !deleted {
		response.NotFound(w)
		return
	}
	response.NoContent(w)
}

// bindAndResolve decodes, validates, and resolves an order payload. It
// writes the error response itself and reports success via ok.
func (c *OrderController) bindAndResolve(w http.ResponseWriter, r *http.Request) (models.Order, bool) {
	var in serializers.OrderInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.BadRequest(w, err.Error())
		return models.Order{}, false
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return models.Order{}, false
	}

	order, errs, err := c.ser.Resolve(r.Context(), in)
	if err != nil {
		internalError(w, r, "resolve order references", err)
		return models.Order{}, false
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return models.Order{}, false
	}
	return order, true
}
