// Package auth guards draws: organizers hold a bcrypt-hashed passphrase per
// event, givers hold a signed reveal token per draw.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinPassphraseLength is the shortest accepted organizer passphrase.
const MinPassphraseLength = 8

var (
	ErrInvalidPassphrase = errors.New("invalid passphrase")
	ErrWeakPassphrase    = fmt.Errorf("passphrase must be at least %d characters", MinPassphraseLength)
)

// ValidatePassphrase checks if the passphrase meets minimum requirements.
func ValidatePassphrase(passphrase string) error {
	if len(passphrase) < MinPassphraseLength {
		return ErrWeakPassphrase
	}
	return nil
}

// HashPassphrase validates and hashes an organizer passphrase.
func HashPassphrase(passphrase string) (string, error) {
	if err := ValidatePassphrase(passphrase); err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passphrase: %w", err)
	}

	return string(hashed), nil
}

// CheckPassphrase compares a passphrase with its stored hash.
func CheckPassphrase(hash, passphrase string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(passphrase)); err != nil {
		return ErrInvalidPassphrase
	}
	return nil
}
