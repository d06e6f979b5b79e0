// Package common defines shared constants, sentinel errors, and small
// helpers used across lockbox components. Callers should use errors.Is to
// match the sentinel values.
package common

import "errors"

var (
	// Caller bugs: a required input was missing at a component boundary.
	ErrInvalidArgument = errors.New("invalid argument")

	// Ciphertext is corrupt, tampered with, or sealed under a different
	// key or purpose.
	ErrEncryption = errors.New("failed to encrypt/decrypt data")

	// Any other invalid state inside a service or store.
	ErrOperation = errors.New("operation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	ErrUnauthorized = errors.New("unauthorized")
)
