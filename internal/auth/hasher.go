package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies passwords using bcrypt. Every call to Hash
// salts freshly, so equal passwords produce distinct encodings.
type Hasher struct {
	cost int
}

// NewHasher creates a bcrypt-based password hasher. Costs outside the
// bcrypt range fall back to the default of 12.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = 12
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted hash of the password.
func (h *Hasher) Hash(password string) (string, error) {
	if len(password) > 72 {
		return "", errors.New("password exceeds 72 bytes (bcrypt limit)")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether the password matches the stored hash. A malformed
// hash is a mismatch, never a panic.
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
