package hash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulkhanna/dukaan/pkg/hash"
)

func TestMakeAndCheck(t *testing.T) {
	hashed, err := hash.Make("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", hashed)
	assert.True(t, hash.Check("s3cret-pass", hashed))
	assert.False(t, hash.Check("wrong-pass", hashed))
}

func TestMakeEmptyPassword(t *testing.T) {
	_, err := hash.Make("")
	assert.ErrorIs(t, err, hash.ErrEmptyPassword)
}

func TestHashesAreSalted(t *testing.T) {
	a, err := hash.Make("same-input")
	require.NoError(t, err)
	b, err := hash.Make("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestCheckGarbageHash(t *testing.T) {
	assert.False(t, hash.Check("anything", "not-a-bcrypt-hash"))
}
