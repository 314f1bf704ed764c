// Package indexes declares the record store indexes in one place. Both
// store drivers consume the same declarations: Mongo creates real
// indexes, the memory driver enforces the unique ones.
package indexes

import (
	"github.com/rahulkhanna/dukaan/app/repositories"
	"github.com/rahulkhanna/dukaan/pkg/store"
)

// All lists every declared index.
func All() []store.Index {
	return []store.Index{
		// username uniqueness is a store-level contract: a second
		// insert with the same username must fail.
		{Collection: repositories.UsersCollection, Field: "username", Unique: true},
		{Collection: repositories.OrdersCollection, Field: "created_at", Descending: true},
	}
}
