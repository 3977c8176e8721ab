package response

import (
	"encoding/json"
	"net/http"
)

// The relay endpoints keep the flat wire shapes the storefront's forms
// already consume: {message} on success, {error} or {error, details} on
// failure.

type Ack struct {
	Message string `json:"message"`
}

type RelayError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, message string) {
	WriteJson(w, http.StatusOK, Ack{Message: message})
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	WriteJson(w, statusCode, RelayError{Error: message})
}

func ErrorWithDetails(w http.ResponseWriter, statusCode int, message, details string) {
	WriteJson(w, statusCode, RelayError{Error: message, Details: details})
}
