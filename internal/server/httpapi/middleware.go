package httpapi

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/lockbox/internal/common"
	"github.com/dmitrijs2005/lockbox/internal/server/auth"
	"github.com/dmitrijs2005/lockbox/internal/server/authz"
	"github.com/google/uuid"
)

// withRequestID tags every request with a fresh id, echoes it in the
// response headers, and writes one structured access-log line.
func (s *HTTPServer) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set(common.RequestIDHeaderName, requestID)

		s.logger.Info(r.Context(), "request",
			"request_id", requestID, "method", r.Method, "path", r.URL.Path)

		next.ServeHTTP(w, r)
	})
}

// extractBearerToken pulls the token out of the Authorization header.
func extractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", ErrInvalidTokenFormat
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", ErrMissingToken
	}

	return token, nil
}

// requireAuth validates the bearer token and stores the resulting principal
// in the request context. Missing or invalid tokens end the request with
// 401.
func (s *HTTPServer) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := extractBearerToken(r)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
			return
		}

		principal, err := auth.ParsePrincipal(token, s.jwtSecret)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, "authentication_failed", "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	})
}

// requirePermission runs the evaluator for the given requirement. A
// negative evaluation is an ordinary outcome mapped to 403; the evaluator
// only errors on caller bugs, which surface as 500.
func (s *HTTPServer) requirePermission(req authz.Requirement, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
			return
		}

		allowed, err := s.evaluator.Evaluate(principal, req)
		if err != nil {
			s.logger.Error(r.Context(), "permission evaluation failed", "error", err)
			writeJSONError(w, http.StatusInternalServerError, "internal_error", "Internal error")
			return
		}

		if !allowed {
			writeJSONError(w, http.StatusForbidden, "forbidden", "Insufficient permissions")
			return
		}

		next.ServeHTTP(w, r)
	})
}
