package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulkhanna/dukaan/app/routes"
	"github.com/rahulkhanna/dukaan/database/indexes"
	"github.com/rahulkhanna/dukaan/pkg/router"
	"github.com/rahulkhanna/dukaan/pkg/store"
	"github.com/rahulkhanna/dukaan/pkg/testkit"
)

func newAPI(t *testing.T) http.Handler {
	t.Helper()
	r := router.New()
	routes.RegisterAPI(r, store.NewMemory(indexes.All()))
	return r.Handler()
}

func createUser(t *testing.T, h http.Handler, username string) string {
	t.Helper()
	rec := testkit.DoJSON(t, h, http.MethodPost, "/users/", map[string]interface{}{
		"username": username,
		"email":    username + "@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	return testkit.DataMap(t, rec)["id"].(string)
}

func createProduct(t *testing.T, h http.Handler, name string, price float64) string {
	t.Helper()
	rec := testkit.DoJSON(t, h, http.MethodPost, "/products/", map[string]interface{}{
		"name":        name,
		"description": "desc of " + name,
		"price":       price,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	return testkit.DataMap(t, rec)["id"].(string)
}

func TestUserCreateOmitsPassword(t *testing.T) {
	h := newAPI(t)

	rec := testkit.DoJSON(t, h, http.MethodPost, "/users/", map[string]interface{}{
		"username": "asha",
		"email":    "asha@example.com",
		"password": "plaintext-secret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := testkit.DataMap(t, rec)
	assert.Equal(t, "asha", body["username"])
	assert.Equal(t, "asha@example.com", body["email"])
	assert.NotEmpty(t, body["id"])
	_, leaked := body["password"]
	assert.False(t, leaked, "password must never be emitted")

	// The stored record never leaks it on read either.
	rec = testkit.DoJSON(t, h, http.MethodGet, "/users/"+body["id"].(string)+"/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	_, leaked = testkit.DataMap(t, rec)["password"]
	assert.False(t, leaked)
}

func TestUserDuplicateUsername(t *testing.T) {
	h := newAPI(t)
	createUser(t, h, "ravi")

	rec := testkit.DoJSON(t, h, http.MethodPost, "/users/", map[string]interface{}{
		"username": "ravi",
		"email":    "other@example.com",
		"password": "another-pass",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := testkit.Decode(t, rec)
	assert.Contains(t, env.Errors, "username")
}

func TestUserValidationListsEveryField(t *testing.T) {
	h := newAPI(t)

	rec := testkit.DoJSON(t, h, http.MethodPost, "/users/", map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := testkit.Decode(t, rec)
	assert.Contains(t, env.Errors, "username")
	assert.Contains(t, env.Errors, "email")
	assert.Contains(t, env.Errors, "password")
}

func TestProductShowUnknown(t *testing.T) {
	h := newAPI(t)

	// Well-formed id that was never created.
	rec := testkit.DoJSON(t, h, http.MethodGet, "/products/64b5fc2f9d3e7a0001c0ffee/", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Malformed id cannot reference any record.
	rec = testkit.DoJSON(t, h, http.MethodGet, "/products/not-an-id/", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductRoundTrip(t *testing.T) {
	h := newAPI(t)

	payload := map[string]interface{}{
		"name":        "Laptop",
		"description": "High-end gaming laptop",
		"price":       1999.99,
	}
	rec := testkit.DoJSON(t, h, http.MethodPost, "/products/", payload)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := testkit.DataMap(t, rec)

	rec = testkit.DoJSON(t, h, http.MethodGet, "/products/"+created["id"].(string)+"/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	fetched := testkit.DataMap(t, rec)

	assert.Equal(t, created["id"], fetched["id"])
	assert.Equal(t, "Laptop", fetched["name"])
	assert.Equal(t, "High-end gaming laptop", fetched["description"])
	assert.Equal(t, 1999.99, fetched["price"])
}

func TestProductZeroPriceIsValid(t *testing.T) {
	h := newAPI(t)

	rec := testkit.DoJSON(t, h, http.MethodPost, "/products/", map[string]interface{}{
		"name":  "Free sample",
		"price": 0,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	assert.Equal(t, float64(0), testkit.DataMap(t, rec)["price"])
}

func TestProductNegativePriceRejected(t *testing.T) {
	h := newAPI(t)

	rec := testkit.DoJSON(t, h, http.MethodPost, "/products/", map[string]interface{}{
		"name":  "Broken",
		"price": -1,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, testkit.Decode(t, rec).Errors, "price")
}

func TestOrderExpansion(t *testing.T) {
	h := newAPI(t)
	userID := createUser(t, h, "buyer")
	laptop := createProduct(t, h, "Laptop", 1999.99)
	mouse := createProduct(t, h, "Mouse", 24.50)

	rec := testkit.DoJSON(t, h, http.MethodPost, "/orders/", map[string]interface{}{
		"user":     userID,
		"products": []string{laptop, mouse},
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	orderID := testkit.DataMap(t, rec)["id"].(string)

	rec = testkit.DoJSON(t, h, http.MethodGet, "/orders/"+orderID+"/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := testkit.DataMap(t, rec)

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok, "user must be expanded, got %T", body["user"])
	assert.Equal(t, userID, user["id"])
	assert.Equal(t, "buyer", user["username"])
	_, leaked := user["password"]
	assert.False(t, leaked)

	products, ok := body["products"].([]interface{})
	require.True(t, ok)
	require.Len(t, products, 2)

	// Submission order is preserved.
	first := products[0].(map[string]interface{})
	second := products[1].(map[string]interface{})
	assert.Equal(t, laptop, first["id"])
	assert.Equal(t, "Laptop", first["name"])
	assert.Equal(t, mouse, second["id"])
	assert.Equal(t, 24.50, second["price"])

	assert.NotEmpty(t, body["created_at"])
}

func TestOrderRejectsUnknownReferences(t *testing.T) {
	h := newAPI(t)

	rec := testkit.DoJSON(t, h, http.MethodPost, "/orders/", map[string]interface{}{
		"user":     "64b5fc2f9d3e7a0001c0ffee",
		"products": []string{"64b5fc2f9d3e7a0001c0ffed", "bogus"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := testkit.Decode(t, rec)
	assert.Contains(t, env.Errors, "user")
	assert.Contains(t, env.Errors, "products")
	assert.Contains(t, env.Errors["user"], "64b5fc2f9d3e7a0001c0ffee")
	assert.Contains(t, env.Errors["products"], "64b5fc2f9d3e7a0001c0ffed")
	assert.Contains(t, env.Errors["products"], "bogus")
}

func TestOrderDanglingProductExpandsToNull(t *testing.T) {
	h := newAPI(t)
	userID := createUser(t, h, "collector")
	keep := createProduct(t, h, "Keyboard", 79)
	gone := createProduct(t, h, "Discontinued", 5)

	rec := testkit.DoJSON(t, h, http.MethodPost, "/orders/", map[string]interface{}{
		"user":     userID,
		"products": []string{keep, gone},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	orderID := testkit.DataMap(t, rec)["id"].(string)

	rec = testkit.DoJSON(t, h, http.MethodDelete, "/products/"+gone+"/", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = testkit.DoJSON(t, h, http.MethodGet, "/orders/"+orderID+"/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	products := testkit.DataMap(t, rec)["products"].([]interface{})
	require.Len(t, products, 2)
	assert.NotNil(t, products[0])
	assert.Nil(t, products[1], "deleted product keeps its slot as null")
}

func TestOrderCreatedAtImmutable(t *testing.T) {
	h := newAPI(t)
	userID := createUser(t, h, "steady")
	product := createProduct(t, h, "Pen", 2)

	rec := testkit.DoJSON(t, h, http.MethodPost, "/orders/", map[string]interface{}{
		"user":     userID,
		"products": []string{product},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := testkit.DataMap(t, rec)
	orderID := created["id"].(string)
	stamp := created["created_at"]

	rec = testkit.DoJSON(t, h, http.MethodPut, "/orders/"+orderID+"/", map[string]interface{}{
		"user":     userID,
		"products": []string{},
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	updated := testkit.DataMap(t, rec)

	assert.Equal(t, stamp, updated["created_at"])
	assert.Len(t, updated["products"], 0)
}

func TestDeleteTwice(t *testing.T) {
	h := newAPI(t)

	ids := map[string]string{
		"users":    createUser(t, h, "ephemeral"),
		"products": createProduct(t, h, "One-off", 1),
	}
	for entity, id := range ids {
		path := fmt.Sprintf("/%s/%s/", entity, id)

		rec := testkit.DoJSON(t, h, http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code, path)
		assert.Zero(t, rec.Body.Len(), "204 must have an empty body")

		rec = testkit.DoJSON(t, h, http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestPutNonexistentIs404(t *testing.T) {
	h := newAPI(t)
	const ghost = "64b5fc2f9d3e7a0001c0ffee"

	payloads := map[string]interface{}{
		"users":    map[string]interface{}{"username": "x", "email": "x@example.com", "password": "p4ssword"},
		"products": map[string]interface{}{"name": "x", "price": 1},
		"orders":   map[string]interface{}{"user": ghost, "products": []string{}},
	}
	for entity, payload := range payloads {
		rec := testkit.DoJSON(t, h, http.MethodPut, fmt.Sprintf("/%s/%s/", entity, ghost), payload)
		assert.Equal(t, http.StatusNotFound, rec.Code, entity)
	}
}

func TestListEndpoints(t *testing.T) {
	h := newAPI(t)

	// Empty collections list as empty arrays.
	for _, entity := range []string{"users", "products", "orders"} {
		rec := testkit.DoJSON(t, h, http.MethodGet, "/"+entity+"/", nil)
		require.Equal(t, http.StatusOK, rec.Code, entity)
	}

	createUser(t, h, "lister")
	createProduct(t, h, "Listed", 10)

	rec := testkit.DoJSON(t, h, http.MethodGet, "/users/", nil)
	assert.Len(t, testkit.DataList(t, rec), 1)

	rec = testkit.DoJSON(t, h, http.MethodGet, "/products/", nil)
	assert.Len(t, testkit.DataList(t, rec), 1)
}

func TestMalformedJSONIsBadRequest(t *testing.T) {
	h := newAPI(t)

	rec := testkit.DoJSON(t, h, http.MethodPost, "/products/", `{"name": "half`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
