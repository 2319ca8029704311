package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorResponse is the failure envelope shared by all contact endpoints.
// Errors carries per-field messages for validation failures; Error carries
// a generic description for server-side failures. Field detail and server
// detail are never mixed in one response.
type errorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// writeJSON encodes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// writeServerError hides internal detail behind a generic 500 envelope.
func writeServerError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Success: false,
		Message: "Server error",
		Error:   "internal server error",
	})
}
