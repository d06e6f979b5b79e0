package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/lockbox/internal/common"
)

// Middleware-specific errors.
var (
	// ErrMissingToken indicates no authentication token was provided.
	ErrMissingToken = errors.New("missing authentication token")

	// ErrInvalidTokenFormat indicates the token format is invalid.
	ErrInvalidTokenFormat = errors.New("invalid token format")
)

// ErrorResponse is the JSON problem payload for every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, status int, errorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := ErrorResponse{
		Error:   errorCode,
		Message: message,
		Code:    status,
	}

	_ = json.NewEncoder(w).Encode(response)
}

// writeServiceError converts a service error kind into a status code and a
// user-visible message. Raw error text never reaches the client.
func (s *HTTPServer) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)

	switch {
	case errors.Is(err, common.ErrInvalidArgument):
		writeJSONError(w, http.StatusBadRequest, "invalid_argument", "A required input is missing or invalid")
	case errors.Is(err, common.ErrEncryption):
		writeJSONError(w, http.StatusInternalServerError, "encryption_error", "Failed to encrypt/decrypt data")
	default:
		writeJSONError(w, http.StatusInternalServerError, "internal_error", "Internal error")
	}
}
