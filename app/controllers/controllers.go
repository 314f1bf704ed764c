// Package controllers holds the HTTP request handlers. Each entity has
// one resource controller whose verbs map straight onto the wire
// contract: Index/Store on the collection path, Show/Update/Destroy on
// the item path.
package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahulkhanna/dukaan/pkg/logger"
	"github.com/rahulkhanna/dukaan/pkg/response"
)

// pathID parses the {id} URL parameter. Malformed ids cannot reference
// any record, so they report as not found rather than bad request.
func pathID(r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	return id, err == nil
}

func internalError(w http.ResponseWriter, r *http.Request, action string, err error) {
	logger.WithCtx(r.Context()).Error(action, "error", err)
	response.Error(w, http.StatusInternalServerError, "Internal Server Error")
}
