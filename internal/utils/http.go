package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-rest-auth/models"
)

func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes a JSON error body {"message": ..., "errors": [...]}.
func WriteError(w http.ResponseWriter, statusCode int, message string, details ...string) {
	_, _ = WriteJSON(w, models.ErrorResponse{Message: message, Errors: details}, statusCode)
}
