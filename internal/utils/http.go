package utils

import (
	"encoding/json"
	"net/http"
)

// WriteJSON serialises v into the response body with the given status code
// and a "application/json" content type. Encoding errors are swallowed: by
// the time they can occur the header has already been written.
func WriteJSON(w http.ResponseWriter, v any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}
