package handler

import (
	"encoding/json"
	"net/http"

	apperrors "pdf-merge-api/pkg/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, errorResponse{Error: message})
}

// writeAppError writes the status and message carried by an AppError
func writeAppError(w http.ResponseWriter, err *apperrors.AppError) {
	writeError(w, apperrors.GetStatusCode(err), err.Message)
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}
