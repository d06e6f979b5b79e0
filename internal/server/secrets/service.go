// Package secrets implements the secrets domain service: user data is
// encrypted before it reaches storage and decrypted on the way out, so the
// store only ever holds ciphertext tokens.
package secrets

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lockbox/internal/logging"
)

// Repository is the per-user storage for ciphertext tokens.
type Repository interface {
	Add(ctx context.Context, userID string, item string) (string, error)
	GetByUserID(ctx context.Context, userID string) ([]string, error)
}

// Encryptor seals plaintext into opaque tokens and opens them again.
type Encryptor interface {
	Encrypt(ctx context.Context, plaintext string) (string, error)
	Decrypt(ctx context.Context, token string) (string, error)
}

type Service struct {
	repo      Repository
	encryptor Encryptor
	logger    logging.Logger
}

func NewService(repo Repository, enc Encryptor, l logging.Logger) *Service {
	return &Service{
		repo:      repo,
		encryptor: enc,
		logger:    l.With("module", "secrets"),
	}
}

// Add encrypts secret and stores the resulting ciphertext token. The token
// doubles as the stored id: there is no separate synthetic id space.
func (s *Service) Add(ctx context.Context, userID string, secret string) (string, error) {
	token, err := s.encryptor.Encrypt(ctx, secret)
	if err != nil {
		s.logger.Error(ctx, "add secret failed", "user_id", userID, "error", err)
		return "", fmt.Errorf("error encrypting secret: %w", err)
	}

	stored, err := s.repo.Add(ctx, userID, token)
	if err != nil {
		s.logger.Error(ctx, "add secret failed", "user_id", userID, "error", err)
		return "", fmt.Errorf("error storing secret: %w", err)
	}
	return stored, nil
}

// List fetches every ciphertext token stored for the user and decrypts each
// one. A decryption failure on any item fails the whole call: no partial
// results.
func (s *Service) List(ctx context.Context, userID string) ([]string, error) {
	tokens, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "list secrets failed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("error listing secrets: %w", err)
	}

	plaintexts := make([]string, 0, len(tokens))
	for _, token := range tokens {
		plaintext, err := s.encryptor.Decrypt(ctx, token)
		if err != nil {
			s.logger.Error(ctx, "list secrets failed", "user_id", userID, "error", err)
			return nil, fmt.Errorf("error decrypting secret: %w", err)
		}
		plaintexts = append(plaintexts, plaintext)
	}
	return plaintexts, nil
}
