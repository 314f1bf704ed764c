package routes

import (
	"net/http"

	"github.com/rahulkhanna/dukaan/app/controllers"
	"github.com/rahulkhanna/dukaan/app/repositories"
	"github.com/rahulkhanna/dukaan/app/serializers"
	"github.com/rahulkhanna/dukaan/pkg/metrics"
	"github.com/rahulkhanna/dukaan/pkg/router"
	"github.com/rahulkhanna/dukaan/pkg/store"
)

// RegisterAPI wires the controllers onto the router. Repositories are
// built here from the injected store so the whole dependency graph
// hangs off a single connection with an explicit lifecycle.
func RegisterAPI(r *router.Router, st store.Store) {
	userRepo := repositories.NewUserRepository(st)
	productRepo := repositories.NewProductRepository(st)
	orderRepo := repositories.NewOrderRepository(st)

	users := controllers.NewUserController(userRepo)
	products := controllers.NewProductController(productRepo)
	orders := controllers.NewOrderController(
		orderRepo,
		serializers.NewOrderSerializer(userRepo, productRepo),
	)

	r.Get("/users/", "users.index", users.Index)
	r.Post("/users/", "users.store", users.Store)
	r.Get("/users/{id}/", "users.show", users.Show)
	r.Put("/users/{id}/", "users.update", users.Update)
	r.Delete("/users/{id}/", "users.destroy", users.Destroy)

	r.Get("/products/", "products.index", products.Index)
	r.Post("/products/", "products.store", products.Store)
	r.Get("/products/{id}/", "products.show", products.Show)
	r.Put("/products/{id}/", "products.update", products.Update)
	r.Delete("/products/{id}/", "products.destroy", products.Destroy)

	r.Get("/orders/", "orders.index", orders.Index)
	r.Post("/orders/", "orders.store", orders.Store)
	r.Get("/orders/{id}/", "orders.show", orders.Show)
	r.Put("/orders/{id}/", "orders.update", orders.Update)
	r.Delete("/orders/{id}/", "orders.destroy", orders.Destroy)

	r.Get("/metrics", "metrics", metrics.Handler())
	r.Get("/healthz", "healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok")) //nolint:errcheck
	})
}
