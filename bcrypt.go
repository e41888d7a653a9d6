package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the adaptive work factor used when hashing
// passwords. Raise it as hardware gets faster.
var DefaultBcryptCost = 12

// HashPassword will generate a password hash. The salt is randomized by
// bcrypt on every call, so hashing the same password twice yields
// different digests that both verify.
func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, DefaultBcryptCost)
}

// HashPasswordWithCost hashes with an explicit cost factor.
func HashPasswordWithCost(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(h), err
}

// ComparePasswordAndHash will validate the given cleartext password
// matches the hashed password. Malformed digests and mismatches are
// indistinguishable to callers.
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrMismatchedHashAndPassword
	}
	return nil
}
