// Package encryption wraps a purpose-bound protector behind the error
// taxonomy the domain services expect. Every call performs a fresh
// cryptographic operation; plaintext is never cached.
package encryption

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lockbox/internal/common"
	"github.com/dmitrijs2005/lockbox/internal/logging"
)

// Protector is the purpose-scoped protect/unprotect capability consumed by
// the service. Key storage, rotation, and distribution belong to its
// provider.
type Protector interface {
	Protect(plaintext []byte) (string, error)
	Unprotect(token string) ([]byte, error)
}

// Service encrypts plaintext strings to opaque ciphertext tokens and back.
type Service struct {
	protector Protector
	logger    logging.Logger
}

func NewService(p Protector, l logging.Logger) *Service {
	return &Service{
		protector: p,
		logger:    l.With("module", "encryption"),
	}
}

// Encrypt seals plaintext into a ciphertext token.
func (s *Service) Encrypt(ctx context.Context, plaintext string) (string, error) {
	token, err := s.protector.Protect([]byte(plaintext))
	if err != nil {
		s.logger.Error(ctx, "encrypt failed", "error", err)
		return "", fmt.Errorf("%w: encrypt: %v", common.ErrEncryption, err)
	}
	return token, nil
}

// Decrypt opens a ciphertext token produced by Encrypt. Tokens that are
// malformed, tampered with, or sealed under a different key or purpose
// yield common.ErrEncryption.
func (s *Service) Decrypt(ctx context.Context, token string) (string, error) {
	plaintext, err := s.protector.Unprotect(token)
	if err != nil {
		s.logger.Error(ctx, "decrypt failed", "error", err)
		return "", fmt.Errorf("%w: decrypt: %v", common.ErrEncryption, err)
	}
	return string(plaintext), nil
}
