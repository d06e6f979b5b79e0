package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/lockbox/internal/server/auth"
)

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *HTTPServer) handleAddName(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	var req AddNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_body", "Request body is not valid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_name", "Name "+err.Error())
		return
	}

	if _, err := s.names.Add(r.Context(), principal.Subject, req.Name); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", namesPath)
	w.WriteHeader(http.StatusCreated)
}

func (s *HTTPServer) handleListNames(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	items, err := s.names.List(r.Context(), principal.Subject)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSONStrings(w, items)
}

func (s *HTTPServer) handleAddSecret(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	var req AddSecretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_body", "Request body is not valid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_secret", "Secret "+err.Error())
		return
	}

	if _, err := s.secrets.Add(r.Context(), principal.Subject, req.Secret); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", secretsPath)
	w.WriteHeader(http.StatusCreated)
}

func (s *HTTPServer) handleListSecrets(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	items, err := s.secrets.List(r.Context(), principal.Subject)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSONStrings(w, items)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeJSONStrings renders a string sequence as a JSON array, never null.
func writeJSONStrings(w http.ResponseWriter, items []string) {
	if items == nil {
		items = []string{}
	}
	writeJSON(w, http.StatusOK, items)
}
