// Package cryptox implements the key-derivation and symmetric-encryption
// primitives used by the server: a password-to-key stretch (argon2id),
// purpose-bound subkey derivation (HKDF-SHA256), and an AES-GCM protector
// producing opaque ciphertext tokens.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/lockbox/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

// ErrMalformedToken is returned by Unprotect when the token is not a valid
// ciphertext token (bad encoding or truncated).
var ErrMalformedToken = errors.New("malformed ciphertext token")

// DeriveMasterKey stretches a low-entropy secret into a 32-byte master key
// using argon2id.
//
// The same (secret, salt) pair always yields the same key, so a process
// restarted with the same configuration can open tokens sealed before the
// restart.
func DeriveMasterKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}

// Keychain derives purpose-bound protectors from a single master key.
// Distinct purposes yield cryptographically independent subkeys, so a token
// sealed under one purpose can never be opened under another.
type Keychain struct {
	master []byte
}

// NewKeychain wraps the given master key. The key must be a valid AES key
// length (16, 24, or 32 bytes).
func NewKeychain(master []byte) (*Keychain, error) {
	switch len(master) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("invalid master key length: %d", len(master))
	}
	return &Keychain{master: master}, nil
}

// Protector derives the subkey for the given purpose via HKDF-SHA256 (the
// purpose string is the info parameter) and returns an AES-GCM protector
// bound to it.
func (k *Keychain) Protector(purpose string) (*Protector, error) {
	key := make([]byte, len(k.master))
	r := hkdf.New(sha256.New, k.master, nil, []byte("lockbox/"+purpose))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Protector{aead: aead}, nil
}

// Protector seals plaintext into opaque ciphertext tokens and opens them
// again. A token is base64url(nonce || ciphertext) with a fresh random
// nonce per call; the GCM tag makes any tampering detectable on open.
type Protector struct {
	aead cipher.AEAD
}

// Protect encrypts plaintext and returns the ciphertext token.
func (p *Protector) Protect(plaintext []byte) (string, error) {
	nonce := common.GenerateRandByteArray(p.aead.NonceSize())
	sealed := p.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Unprotect reverses Protect. It returns ErrMalformedToken for tokens that
// cannot be decoded, and the cipher's authentication error for tokens that
// were tampered with or sealed under a different key or purpose.
func (p *Protector) Unprotect(token string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if len(raw) < p.aead.NonceSize() {
		return nil, ErrMalformedToken
	}

	nonce, ciphertext := raw[:p.aead.NonceSize()], raw[p.aead.NonceSize():]
	plaintext, err := p.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, err
	}
	return plaintext, nil
}
