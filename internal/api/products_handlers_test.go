package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/example/simplecrud/internal/domain"
	"github.com/example/simplecrud/internal/repository"
	"github.com/example/simplecrud/internal/service"
)

func newTestRouter() chi.Router {
	svc := service.NewProductService(repository.NewMemoryRepository())
	r := chi.NewRouter()
	NewAPI(svc).RegisterRoutes(r)
	return r
}

func TestProducts_GetAllHandler_Empty(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/api/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	contentType := w.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
	}

	body := w.Body.String()
	expected := "[]\n"
	if body != expected {
		t.Errorf("Expected body %q, got %q", expected, body)
	}
}

func TestProducts_CreateHandler_Valid(t *testing.T) {
	router := newTestRouter()

	payload := `{"name":"Widget","description":"a widget","price":9.99}`
	req := httptest.NewRequest("POST", "/api/products", bytes.NewBufferString(payload))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	location := w.Header().Get("Location")
	if location != "/api/products/1" {
		t.Errorf("Expected Location '/api/products/1', got '%s'", location)
	}

	var product domain.Product
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if product.ID != 1 {
		t.Errorf("Expected id 1, got %d", product.ID)
	}
	if product.CreatedDate == nil {
		t.Error("Expected createdDate to be set")
	}
	if product.Name != "Widget" || product.Price != 9.99 {
		t.Errorf("Unexpected product fields: %+v", product)
	}
}

func TestProducts_CreateHandler_InvalidJSON(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("POST", "/api/products", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestProducts_CreateHandler_ValidationErrors(t *testing.T) {
	router := newTestRouter()

	payload := `{"name":"","price":-5}`
	req := httptest.NewRequest("POST", "/api/products", bytes.NewBufferString(payload))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
	}

	var errs []string
	if err := json.NewDecoder(w.Body).Decode(&errs); err != nil {
		t.Fatalf("Failed to decode error list: %v", err)
	}
	if len(errs) != 2 {
		t.Errorf("Expected 2 errors, got %d: %v", len(errs), errs)
	}
}

func TestProducts_GetByIDHandler_NotFound(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/api/products/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %q", w.Body.String())
	}
}

func TestProducts_GetByIDHandler_InvalidID(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/api/products/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestProducts_UpdateHandler(t *testing.T) {
	router := newTestRouter()

	create := httptest.NewRequest("POST", "/api/products", bytes.NewBufferString(`{"name":"Widget","price":9.99}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, create)
	if w.Code != http.StatusCreated {
		t.Fatalf("Setup create failed with status %d", w.Code)
	}

	update := httptest.NewRequest("PUT", "/api/products", bytes.NewBufferString(`{"id":1,"name":"Widget v2","price":19.99}`))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, update)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var product domain.Product
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if product.Name != "Widget v2" || product.Price != 19.99 {
		t.Errorf("Unexpected product fields: %+v", product)
	}
	if product.CreatedDate == nil {
		t.Error("Expected createdDate to be preserved")
	}
}

func TestProducts_UpdateHandler_NotFound(t *testing.T) {
	router := newTestRouter()

	update := httptest.NewRequest("PUT", "/api/products", bytes.NewBufferString(`{"id":42,"name":"Ghost","price":1}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, update)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
	}
}

func TestProducts_DeleteHandler(t *testing.T) {
	router := newTestRouter()

	create := httptest.NewRequest("POST", "/api/products", bytes.NewBufferString(`{"name":"Doomed","price":1}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, create)
	if w.Code != http.StatusCreated {
		t.Fatalf("Setup create failed with status %d", w.Code)
	}

	del := httptest.NewRequest("DELETE", "/api/products/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, del)

	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected status %d, got %d", http.StatusNoContent, w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %q", w.Body.String())
	}

	// Deleting the same id again is a 404 with a message body
	del = httptest.NewRequest("DELETE", "/api/products/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, del)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}

	var resp ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error == "" {
		t.Error("Expected a failure message in the response")
	}
}

func TestProducts_DeleteHandler_InvalidID(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("DELETE", "/api/products/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
