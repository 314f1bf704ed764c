package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahulkhanna/dukaan/pkg/store"
)

type account struct {
	ID       primitive.ObjectID `bson:"_id"`
	Username string             `bson:"username"`
	Score    int                `bson:"score"`
}

const accountsCol = "accounts"

func newMemory() *store.Memory {
	return store.NewMemory([]store.Index{
		{Collection: accountsCol, Field: "username", Unique: true},
	})
}

func TestInsertAndFindByID(t *testing.T) {
	m := newMemory()
	ctx := context.Background()

	doc := account{ID: primitive.NewObjectID(), Username: "first", Score: 7}
	require.NoError(t, m.Insert(ctx, accountsCol, doc))

	var got account
	require.NoError(t, m.FindByID(ctx, accountsCol, doc.ID, &got))
	assert.Equal(t, doc, got)
}

func TestFindByIDNotFound(t *testing.T) {
	m := newMemory()

	var got account
	err := m.FindByID(context.Background(), accountsCol, primitive.NewObjectID(), &got)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestFindAllPreservesInsertionOrder(t *testing.T) {
	m := newMemory()
	ctx := context.Background()

	names := []string{"alpha", "bravo", "charlie"}
	for _, name := range names {
		require.NoError(t, m.Insert(ctx, accountsCol, account{ID: primitive.NewObjectID(), Username: name}))
	}

	var all []account
	require.NoError(t, m.FindAll(ctx, accountsCol, &all))
	require.Len(t, all, 3)
	for i, name := range names {
		assert.Equal(t, name, all[i].Username)
	}
}

func TestFindAllEmptyCollection(t *testing.T) {
	m := newMemory()

	var all []account
	require.NoError(t, m.FindAll(context.Background(), "never_touched", &all))
	assert.Empty(t, all)
}

func TestUniqueIndexViolation(t *testing.T) {
	m := newMemory()
	ctx := context.Background()

	require.NoError(t, m.Insert(ctx, accountsCol, account{ID: primitive.NewObjectID(), Username: "taken"}))

	err := m.Insert(ctx, accountsCol, account{ID: primitive.NewObjectID(), Username: "taken"})
	var dup *store.DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, accountsCol, dup.Collection)
	assert.Equal(t, "username", dup.Field)
}

func TestReplace(t *testing.T) {
	m := newMemory()
	ctx := context.Background()

	doc := account{ID: primitive.NewObjectID(), Username: "before", Score: 1}
	require.NoError(t, m.Insert(ctx, accountsCol, doc))

	doc.Username = "after"
	doc.Score = 2
	require.NoError(t, m.Replace(ctx, accountsCol, doc.ID, doc))

	var got account
	require.NoError(t, m.FindByID(ctx, accountsCol, doc.ID, &got))
	assert.Equal(t, "after", got.Username)
	assert.Equal(t, 2, got.Score)
}

func TestReplaceMissingDocument(t *testing.T) {
	m := newMemory()

	doc := account{ID: primitive.NewObjectID(), Username: "ghost"}
	err := m.Replace(context.Background(), accountsCol, doc.ID, doc)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestReplaceKeepsOwnUniqueValue(t *testing.T) {
	m := newMemory()
	ctx := context.Background()

	doc := account{ID: primitive.NewObjectID(), Username: "stable", Score: 1}
	require.NoError(t, m.Insert(ctx, accountsCol, doc))

	// Same username on the same document is not a conflict.
	doc.Score = 9
	assert.NoError(t, m.Replace(ctx, accountsCol, doc.ID, doc))
}

func TestReplaceIntoConflict(t *testing.T) {
	m := newMemory()
	ctx := context.Background()

	a := account{ID: primitive.NewObjectID(), Username: "a"}
	b := account{ID: primitive.NewObjectID(), Username: "b"}
	require.NoError(t, m.Insert(ctx, accountsCol, a))
	require.NoError(t, m.Insert(ctx, accountsCol, b))

	b.Username = "a"
	err := m.Replace(ctx, accountsCol, b.ID, b)
	var dup *store.DuplicateKeyError
	assert.True(t, errors.As(err, &dup))
}

func TestDelete(t *testing.T) {
	m := newMemory()
	ctx := context.Background()

	doc := account{ID: primitive.NewObjectID(), Username: "bye"}
	require.NoError(t, m.Insert(ctx, accountsCol, doc))

	deleted, err := m.Delete(ctx, accountsCol, doc.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = m.Delete(ctx, accountsCol, doc.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	var all []account
	require.NoError(t, m.FindAll(ctx, accountsCol, &all))
	assert.Empty(t, all)
}

func TestInsertRequiresObjectID(t *testing.T) {
	m := newMemory()

	err := m.Insert(context.Background(), accountsCol, account{Username: "no-id"})
	assert.Error(t, err)
}
