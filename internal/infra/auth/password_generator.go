// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"

	"passport/internal/domain/service"
)

const (
	// passwordAlphabet is the mixed alphanumeric set replacement passwords
	// are drawn from.
	passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	minPasswordLength     = 8
	defaultPasswordLength = 12
)

// randomPasswordGenerator produces replacement passwords from crypto/rand.
type randomPasswordGenerator struct {
	length int
}

// NewRandomPasswordGenerator is the constructor for randomPasswordGenerator.
// Lengths below the minimum fall back to the default.
func NewRandomPasswordGenerator(length int) service.PasswordGenerator {
	if length < minPasswordLength {
		length = defaultPasswordLength
	}

	return &randomPasswordGenerator{length: length}
}

// Generate returns a new random password of the configured length.
func (g *randomPasswordGenerator) Generate() (string, error) {
	alphabetSize := big.NewInt(int64(len(passwordAlphabet)))
	password := make([]byte, g.length)

	for i := range password {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random bytes")
		}
		password[i] = passwordAlphabet[n.Int64()]
	}

	return string(password), nil
}
