package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/klaus-0-0/vault/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode and an
// application/json content type. On marshal failure it answers 500 and
// returns the wrapped error.
//
//	WriteJSON(w, items, http.StatusOK)
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

// WriteMessage writes {"message": message} with statusCode.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}
