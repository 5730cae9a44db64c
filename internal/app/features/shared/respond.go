// Package shared holds helpers used across the API feature handlers.
package shared

import (
	"encoding/json"
	"net/http"

	"github.com/igor-siergiej/jewellery-catalogue/internal/app/system/apperr"
)

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates an error into the wire error shape. Application
// errors keep their status and message; anything else is masked as a 500.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, apperr.StatusOf(err), map[string]string{"error": apperr.MessageOf(err)})
}

// WriteMessage writes a 200 with the standard confirmation shape used by
// delete endpoints.
func WriteMessage(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, map[string]string{"message": message})
}
