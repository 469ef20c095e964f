package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// writeJSON writes body as a JSON response with the given status code.
// Encoding failures can only be logged; the header is already written.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
