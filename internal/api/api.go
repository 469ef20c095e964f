// Package api implements the HTTP surface of the product CRUD service,
// mapping service Results to transport-level responses.
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/example/simplecrud/internal/service"
)

// API holds the handler groups for all resources.
type API struct {
	products *Products
}

// NewAPI creates a new API instance around the product service.
func NewAPI(svc *service.ProductService) *API {
	return &API{products: NewProducts(svc)}
}

// RegisterRoutes registers all API endpoints on the given chi router.
func (a *API) RegisterRoutes(r chi.Router) {
	// Products endpoints group
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", a.products.GetAllHandler)
		r.Post("/", a.products.CreateHandler)
		r.Put("/", a.products.UpdateHandler)
		r.Get("/{id}", a.products.GetByIDHandler)
		r.Delete("/{id}", a.products.DeleteHandler)
	})

	// Health check endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		if _, err := fmt.Fprintln(w, "SimpleCrud web service is running!"); err != nil {
			log.Printf("failed to write response: %v", err)
		}
	})
}
