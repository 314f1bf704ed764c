// Package store is the document record store behind the entity
// repositories. Two drivers implement the same contract:
//
//   - Mongo: production driver over go.mongodb.org/mongo-driver.
//   - Memory: in-process driver for tests and local development; it
//     round-trips documents through the bson codec so both drivers see
//     identical marshaling behavior.
//
// Every document carries a caller-assigned ObjectID under _id. Absent
// documents surface as ErrNotFound; unique-index violations surface as
// *DuplicateKeyError naming the offending field.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no document matches the given id.
var ErrNotFound = errors.New("store: document not found")

// DuplicateKeyError reports a unique-index violation on insert/replace.
type DuplicateKeyError struct {
	Collection string
	Field      string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("store: duplicate %s in %s", e.Field, e.Collection)
}

// Index declares a single-field index on a collection. Unique indexes
// are enforced by both drivers.
type Index struct {
	Collection string
	Field      string
	Unique     bool
	Descending bool
}

// Store is the persistence contract shared by all entity repositories.
// Each operation touches exactly one document; atomicity beyond that is
// out of scope.
type Store interface {
	// Insert persists doc (which must carry a non-zero _id).
	Insert(ctx context.Context, collection string, doc interface{}) error

	// FindByID decodes the document with the given id into out.
	FindByID(ctx context.Context, collection string, id primitive.ObjectID, out interface{}) error

	// FindAll decodes every document in the collection into out
	// (a pointer to a slice), in store-native order.
	FindAll(ctx context.Context, collection string, out interface{}) error

	// Replace overwrites the document with the given id wholesale.
	// Last write wins; there is no optimistic concurrency control.
	Replace(ctx context.Context, collection string, id primitive.ObjectID, doc interface{}) error

	// Delete removes the document if present and reports whether
	// anything was deleted.
	Delete(ctx context.Context, collection string, id primitive.ObjectID) (bool, error)

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}

// uniqueFields returns the unique-indexed field names for a collection.
func uniqueFields(indexes []Index, collection string) []string {
	var fields []string
	for _, ix := range indexes {
		if ix.Unique && ix.Collection == collection {
			fields = append(fields, ix.Field)
		}
	}
	return fields
}
