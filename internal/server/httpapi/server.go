// Package httpapi exposes the names and secrets services over HTTP behind
// bearer authentication and permission checks.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/lockbox/internal/logging"
	"github.com/dmitrijs2005/lockbox/internal/server/authz"
	"github.com/dmitrijs2005/lockbox/internal/server/names"
	"github.com/dmitrijs2005/lockbox/internal/server/secrets"
)

const (
	namesPath   = "/api/names"
	secretsPath = "/api/secrets"
)

type HTTPServer struct {
	address   string
	logger    logging.Logger
	names     *names.Service
	secrets   *secrets.Service
	evaluator *authz.Evaluator
	jwtSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, ns *names.Service, ss *secrets.Service, secretKey string) *HTTPServer {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		names:     ns,
		secrets:   ss,
		evaluator: authz.NewEvaluator(),
		jwtSecret: []byte(secretKey),
	}
}

// Handler builds the full route table with the middleware chain applied.
// Names routes require authentication only; secrets routes additionally
// require the matching permission grant.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.Handle("POST "+namesPath, s.requireAuth(http.HandlerFunc(s.handleAddName)))
	mux.Handle("GET "+namesPath, s.requireAuth(http.HandlerFunc(s.handleListNames)))

	mux.Handle("POST "+secretsPath,
		s.requireAuth(s.requirePermission(authz.NewRequirement("write:secrets"), http.HandlerFunc(s.handleAddSecret))))
	mux.Handle("GET "+secretsPath,
		s.requireAuth(s.requirePermission(authz.NewRequirement("read:secrets"), http.HandlerFunc(s.handleListSecrets))))

	return s.withRequestID(mux)
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
