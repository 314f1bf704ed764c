package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulkhanna/dukaan/pkg/router"
)

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func do(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestTrailingSlashIsStrict(t *testing.T) {
	r := router.New()
	r.Get("/items/", "items.index", ok)

	assert.Equal(t, http.StatusOK, do(r.Handler(), http.MethodGet, "/items/").Code)
	assert.Equal(t, http.StatusNotFound, do(r.Handler(), http.MethodGet, "/items").Code)
}

func TestMethodRouting(t *testing.T) {
	r := router.New()
	r.Get("/things/", "things.index", ok)
	r.Post("/things/", "things.store", ok)

	assert.Equal(t, http.StatusOK, do(r.Handler(), http.MethodGet, "/things/").Code)
	assert.Equal(t, http.StatusOK, do(r.Handler(), http.MethodPost, "/things/").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(r.Handler(), http.MethodPut, "/things/").Code)
}

func TestGroupPrefix(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	api.Get("/ping/", "api.ping", ok)

	assert.Equal(t, http.StatusOK, do(r.Handler(), http.MethodGet, "/api/ping/").Code)
}

func TestNamedRoutes(t *testing.T) {
	r := router.New()
	r.Get("/widgets/{id}/", "widgets.show", ok)
	r.Get("/health", "", ok) // unnamed routes are not recorded

	routes := r.Routes()
	require.Len(t, routes, 1)
	assert.Equal(t, "widgets.show", routes[0].Name)
	assert.Equal(t, "/widgets/{id}/", routes[0].Path)

	url, err := r.URL("widgets.show", map[string]string{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "/widgets/42/", url)
}

func TestURLErrors(t *testing.T) {
	r := router.New()
	r.Get("/widgets/{id}/", "widgets.show", ok)

	_, err := r.URL("nope", nil)
	assert.Error(t, err)

	_, err = r.URL("widgets.show", nil)
	assert.Error(t, err, "unsubstituted params must error")
}

func TestRouteMiddlewareApplies(t *testing.T) {
	r := router.New()
	tag := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Tagged", "yes")
			next.ServeHTTP(w, req)
		})
	}
	r.Get("/tagged/", "tagged", ok, tag)

	rec := do(r.Handler(), http.MethodGet, "/tagged/")
	assert.Equal(t, "yes", rec.Header().Get("X-Tagged"))
}
