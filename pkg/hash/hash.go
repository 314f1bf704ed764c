// Package hash provides bcrypt password hashing.
//
// Plaintext passwords are never persisted; only the salted hash is
// stored, and a stored hash is never emitted back to the client.
//
//	hashed, err := hash.Make("s3cret")
//	ok := hash.Check("s3cret", hashed)
package hash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rahulkhanna/dukaan/config"
)

// ErrEmptyPassword is returned when an empty string is hashed.
var ErrEmptyPassword = errors.New("hash: empty password")

// Make hashes plain with bcrypt at the configured cost.
func Make(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	b, err := bcrypt.GenerateFromPassword([]byte(plain), config.BcryptCost())
	if err != nil {
		return "", fmt.Errorf("hash: generate: %w", err)
	}
	return string(b), nil
}

// Check reports whether plain matches the stored bcrypt hash.
func Check(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
