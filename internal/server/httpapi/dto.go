package httpapi

import (
	"errors"
	"regexp"
)

// itemTextPattern is the allow-list for stored text: alphanumerics plus
// common punctuation. Anything outside it is rejected at the boundary.
var itemTextPattern = regexp.MustCompile(`^[a-zA-Z0-9 .,!?'"@#$%^&*()\-_+=:;]+$`)

const (
	maxNameLength   = 100
	maxSecretLength = 500
)

// AddNameRequest is the body of POST /api/names.
type AddNameRequest struct {
	Name string `json:"name"`
}

func (r *AddNameRequest) Validate() error {
	return validateItemText(r.Name, maxNameLength)
}

// AddSecretRequest is the body of POST /api/secrets.
type AddSecretRequest struct {
	Secret string `json:"secret"`
}

func (r *AddSecretRequest) Validate() error {
	return validateItemText(r.Secret, maxSecretLength)
}

func validateItemText(text string, maxLength int) error {
	if len(text) == 0 {
		return errors.New("must not be empty")
	}
	if len(text) > maxLength {
		return errors.New("exceeds maximum length")
	}
	if !itemTextPattern.MatchString(text) {
		return errors.New("contains characters outside the allowed set")
	}
	return nil
}
