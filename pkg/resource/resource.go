// Package resource provides Laravel-style API Resource transformers.
//
// A Resource controls exactly what JSON shape the API returns for a
// model — which fields appear, which stay hidden (passwords), and how
// references are expanded.
//
//	users := serializers.NewUserSerializer()
//	response.Success(w, users.ToArray(user))
package resource

// Map is the output shape of a transformed model.
type Map = map[string]interface{}

// List is a transformed collection. Initialized non-nil so an empty
// collection marshals as [] rather than null.
type List = []Map

// NewList returns an empty, non-nil List with the given capacity.
func NewList(capacity int) List {
	return make(List, 0, capacity)
}
