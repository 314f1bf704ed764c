package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rahulkhanna/dukaan/pkg/validate"
)

type signupInput struct {
	Username string   `json:"username" validate:"required,alpha_dash,max=150"`
	Email    string   `json:"email"    validate:"required,email"`
	Password string   `json:"password" validate:"required"`
	Price    *float64 `json:"price"    validate:"required,gte=0"`
	Bio      string   `json:"bio"      validate:"nullable,max=10"`
}

func floatPtr(f float64) *float64 { return &f }

func TestValidInput(t *testing.T) {
	errs := validate.Struct(signupInput{
		Username: "john_doe-99",
		Email:    "john@example.com",
		Password: "secret",
		Price:    floatPtr(12.5),
	})
	assert.Empty(t, errs)
	assert.False(t, validate.HasErrors(errs))
}

func TestRequiredCollectsEveryField(t *testing.T) {
	errs := validate.Struct(signupInput{})
	assert.Len(t, errs, 4)
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	assert.Contains(t, errs, "price")
	assert.True(t, validate.HasErrors(errs))
}

func TestPointerZeroPassesRequired(t *testing.T) {
	// A present pointer to 0 satisfies both required and gte=0.
	errs := validate.Struct(signupInput{
		Username: "zero",
		Email:    "zero@example.com",
		Password: "secret",
		Price:    floatPtr(0),
	})
	assert.Empty(t, errs)
}

func TestGteRejectsNegative(t *testing.T) {
	errs := validate.Struct(signupInput{
		Username: "neg",
		Email:    "neg@example.com",
		Password: "secret",
		Price:    floatPtr(-0.01),
	})
	assert.Contains(t, errs, "price")
}

func TestEmailRule(t *testing.T) {
	for _, bad := range []string{"plain", "no@tld", "@example.com", "a b@example.com"} {
		errs := validate.Struct(signupInput{
			Username: "mailer",
			Email:    bad,
			Password: "secret",
			Price:    floatPtr(1),
		})
		assert.Contains(t, errs, "email", "email %q should fail", bad)
	}
}

func TestAlphaDashRule(t *testing.T) {
	errs := validate.Struct(signupInput{
		Username: "has space",
		Email:    "ok@example.com",
		Password: "secret",
		Price:    floatPtr(1),
	})
	assert.Contains(t, errs, "username")
}

func TestMaxOnStrings(t *testing.T) {
	errs := validate.Struct(signupInput{
		Username: "long",
		Email:    "ok@example.com",
		Password: "secret",
		Price:    floatPtr(1),
		Bio:      "this bio is longer than ten characters",
	})
	assert.Contains(t, errs, "bio")
}

func TestNullableSkipsRules(t *testing.T) {
	errs := validate.Struct(signupInput{
		Username: "quiet",
		Email:    "ok@example.com",
		Password: "secret",
		Price:    floatPtr(1),
		Bio:      "",
	})
	assert.NotContains(t, errs, "bio")
}

func TestObjectIDRule(t *testing.T) {
	type refInput struct {
		User string `json:"user" validate:"required,objectid"`
	}

	assert.Empty(t, validate.Struct(refInput{User: "64b5fc2f9d3e7a0001c0ffee"}))
	assert.Contains(t, validate.Struct(refInput{User: "nope"}), "user")
	assert.Contains(t, validate.Struct(refInput{User: "64b5fc2f9d3e7a0001c0ffe"}), "user") // 23 chars
	assert.Contains(t, validate.Struct(refInput{User: "zzb5fc2f9d3e7a0001c0ffee"}), "user")
}

func TestInRuleKeepsParams(t *testing.T) {
	type statusInput struct {
		Status string `json:"status" validate:"required,in=draft,published,archived,max=20"`
	}

	assert.Empty(t, validate.Struct(statusInput{Status: "published"}))
	assert.Contains(t, validate.Struct(statusInput{Status: "deleted"}), "status")
}
