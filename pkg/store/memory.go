package store

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahulkhanna/dukaan/pkg/metrics"
)

// Memory is an in-process Store driver. Not durable across restarts;
// intended for tests and local development.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]*memCollection
	indexes     []Index
}

type memCollection struct {
	docs  map[primitive.ObjectID]bson.Raw
	order []primitive.ObjectID // insertion order, the driver's native order
}

// NewMemory creates an empty in-memory store enforcing the given
// unique indexes.
func NewMemory(indexes []Index) *Memory {
	return &Memory{
		collections: make(map[string]*memCollection),
		indexes:     indexes,
	}
}

func (m *Memory) collection(name string) *memCollection {
	col, ok := m.collections[name]
	if !ok {
		col = &memCollection{docs: make(map[primitive.ObjectID]bson.Raw)}
		m.collections[name] = col
	}
	return col
}

func (m *Memory) Insert(ctx context.Context, collection string, doc interface{}) error {
	defer metrics.ObserveStoreOp("memory", "insert", collection, time.Now())

	raw, id, err := encode(collection, doc)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	col := m.collection(collection)
	if err := m.checkUnique(col, collection, raw, id); err != nil {
		return err
	}

	col.docs[id] = raw
	col.order = append(col.order, id)
	return nil
}

func (m *Memory) FindByID(ctx context.Context, collection string, id primitive.ObjectID, out interface{}) error {
	defer metrics.ObserveStoreOp("memory", "find", collection, time.Now())

	m.mu.RLock()
	col := m.collections[collection]
	var raw bson.Raw
	ok := false
	if col != nil {
		raw, ok = col.docs[id]
	}
	m.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}
	if err := bson.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("store: decode %s: %w", collection, err)
	}
	return nil
}

func (m *Memory) FindAll(ctx context.Context, collection string, out interface{}) error {
	defer metrics.ObserveStoreOp("memory", "list", collection, time.Now())

	ptr := reflect.ValueOf(out)
	if ptr.Kind() != reflect.Ptr || ptr.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("store: FindAll requires a pointer to a slice, got %T", out)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	col := m.collections[collection]
	var order []primitive.ObjectID
	if col != nil {
		order = col.order
	}

	slice := reflect.MakeSlice(ptr.Elem().Type(), 0, len(order))
	elemType := ptr.Elem().Type().Elem()

	for _, id := range order {
		raw, ok := col.docs[id]
		if !ok {
			continue
		}
		elem := reflect.New(elemType)
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return fmt.Errorf("store: decode %s: %w", collection, err)
		}
		slice = reflect.Append(slice, elem.Elem())
	}

	ptr.Elem().Set(slice)
	return nil
}

func (m *Memory) Replace(ctx context.Context, collection string, id primitive.ObjectID, doc interface{}) error {
	defer metrics.ObserveStoreOp("memory", "replace", collection, time.Now())

	raw, docID, err := encode(collection, doc)
	if err != nil {
		return err
	}
	if docID != id {
		return fmt.Errorf("store: replace in %s: id mismatch", collection)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	col := m.collection(collection)
	if _, ok := col.docs[id]; !ok {
		return ErrNotFound
	}
	if err := m.checkUnique(col, collection, raw, id); err != nil {
		return err
	}

	col.docs[id] = raw
	return nil
}

func (m *Memory) Delete(ctx context.Context, collection string, id primitive.ObjectID) (bool, error) {
	defer metrics.ObserveStoreOp("memory", "delete", collection, time.Now())

	m.mu.Lock()
	defer m.mu.Unlock()

	col := m.collection(collection)
	if _, ok := col.docs[id]; !ok {
		return false, nil
	}
	delete(col.docs, id)
	for i, existing := range col.order {
		if existing == id {
			col.order = append(col.order[:i], col.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (m *Memory) Close(context.Context) error { return nil }

// encode marshals doc through the bson codec and extracts its _id.
func encode(collection string, doc interface{}) (bson.Raw, primitive.ObjectID, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, primitive.NilObjectID, fmt.Errorf("store: encode for %s: %w", collection, err)
	}

	id, ok := bson.Raw(raw).Lookup("_id").ObjectIDOK()
	if !ok || id.IsZero() {
		return nil, primitive.NilObjectID, fmt.Errorf("store: document for %s has no _id", collection)
	}
	return raw, id, nil
}

// checkUnique enforces unique indexes the way Mongo would, excluding
// the document being replaced. Callers hold the write lock.
func (m *Memory) checkUnique(col *memCollection, collection string, raw bson.Raw, self primitive.ObjectID) error {
	for _, field := range uniqueFields(m.indexes, collection) {
		candidate := raw.Lookup(field)
		if candidate.Validate() != nil {
			continue
		}
		for id, existing := range col.docs {
			if id == self {
				continue
			}
			current := existing.Lookup(field)
			if current.Type == candidate.Type && bytes.Equal(current.Value, candidate.Value) {
				return &DuplicateKeyError{Collection: collection, Field: field}
			}
		}
	}
	return nil
}
