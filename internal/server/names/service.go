// Package names implements the names domain service: plain per-user
// strings stored as-is.
package names

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lockbox/internal/logging"
)

// Repository is the per-user storage the service delegates to.
type Repository interface {
	Add(ctx context.Context, userID string, item string) (string, error)
	GetByUserID(ctx context.Context, userID string) ([]string, error)
}

type Service struct {
	repo   Repository
	logger logging.Logger
}

func NewService(repo Repository, l logging.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: l.With("module", "names"),
	}
}

// Add stores name for the user and returns the stored value.
func (s *Service) Add(ctx context.Context, userID string, name string) (string, error) {
	stored, err := s.repo.Add(ctx, userID, name)
	if err != nil {
		s.logger.Error(ctx, "add name failed", "user_id", userID, "error", err)
		return "", fmt.Errorf("error adding name: %w", err)
	}
	return stored, nil
}

// List returns every name stored for the user, empty for unknown users.
func (s *Service) List(ctx context.Context, userID string) ([]string, error) {
	items, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "list names failed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("error listing names: %w", err)
	}
	return items, nil
}
