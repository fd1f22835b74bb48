package domain

import (
	"errors"
	"strings"
)

// Validation errors
var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidSecret   = errors.New("invalid secret")
)

// Validation constants
const (
	MaxUsernameLength = 64
	MinSecretLength   = 1
	MaxSecretLength   = 128
)

// ValidateUsername checks that a username is non-empty, has no
// surrounding whitespace and fits the length bound.
func ValidateUsername(username string) error {
	if username == "" || len(username) > MaxUsernameLength {
		return ErrInvalidUsername
	}

	if strings.TrimSpace(username) != username {
		return ErrInvalidUsername
	}

	return nil
}

// ValidateSecret checks the secret length bounds.
func ValidateSecret(secret string) error {
	if len(secret) < MinSecretLength || len(secret) > MaxSecretLength {
		return ErrInvalidSecret
	}

	return nil
}
