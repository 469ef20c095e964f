package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/example/simplecrud/internal/domain"
	"github.com/example/simplecrud/internal/service"
)

// ProductService defines the service interface the product handlers depend on
type ProductService interface {
	Create(ctx context.Context, product *domain.Product) service.DataResult[*domain.Product]
	Update(ctx context.Context, product *domain.Product) service.DataResult[*domain.Product]
	Delete(ctx context.Context, id int64) service.Result
	GetByID(ctx context.Context, id int64) service.DataResult[*domain.Product]
	GetAll(ctx context.Context) service.DataResult[[]*domain.Product]
}

// Products groups product handlers for testability
type Products struct {
	service ProductService
}

func NewProducts(svc ProductService) *Products {
	return &Products{service: svc}
}

// CreateProductRequest is the POST /api/products body.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Product builds the domain entity from the request. The id is never taken
// from a create body; the repository assigns it.
func (r CreateProductRequest) Product() *domain.Product {
	return &domain.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
	}
}

// UpdateProductRequest is the PUT /api/products body.
type UpdateProductRequest struct {
	ID int64 `json:"id"`
	CreateProductRequest
}

// Product builds the domain entity carrying the client-supplied id.
func (r UpdateProductRequest) Product() *domain.Product {
	product := r.CreateProductRequest.Product()
	product.ID = r.ID
	return product
}

// ErrorResponse is the JSON body for request-level protocol errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GetByIDHandler handles GET /api/products/{id}.
//
// Response: 200 with the product body, 404 with no body when missing,
// 400 for a non-integer id.
func (p *Products) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid product ID"})
		return
	}

	result := p.service.GetByID(r.Context(), id)
	if !result.Success {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, result.Data)
}

// GetAllHandler handles GET /api/products.
//
// Response: always 200 with a JSON array, [] when the store is empty.
func (p *Products) GetAllHandler(w http.ResponseWriter, r *http.Request) {
	result := p.service.GetAll(r.Context())
	writeJSON(w, http.StatusOK, result.Data)
}

// CreateHandler handles POST /api/products.
//
// Request: JSON body with "name", "description", "price".
// Response: 201 with the created product and a Location header, 422 with the
// error list on validation or storage failure, 400 for unparseable JSON.
func (p *Products) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}

	result := p.service.Create(r.Context(), req.Product())
	if !result.Success {
		writeJSON(w, http.StatusUnprocessableEntity, result.Errors)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/products/%d", result.Data.ID))
	writeJSON(w, http.StatusCreated, result.Data)
}

// UpdateHandler handles PUT /api/products.
//
// Request: JSON body with "id", "name", "description", "price".
// Response: 200 with the updated product, 422 with the error list on
// failure, 400 for unparseable JSON.
func (p *Products) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}

	result := p.service.Update(r.Context(), req.Product())
	if !result.Success {
		writeJSON(w, http.StatusUnprocessableEntity, result.Errors)
		return
	}

	writeJSON(w, http.StatusOK, result.Data)
}

// DeleteHandler handles DELETE /api/products/{id}.
//
// Response: 204 with no body, 404 with the failure message or first error,
// 400 for a non-integer id.
func (p *Products) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid product ID"})
		return
	}

	result := p.service.Delete(r.Context(), id)
	if !result.Success {
		msg := result.Message
		if msg == "" && len(result.Errors) > 0 {
			msg = result.Errors[0]
		}
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msg})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
