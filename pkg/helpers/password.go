package helpers

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor used for all stored digests.
const PasswordHashCost = 10

// HashPassword hashes the plain text password using bcrypt. The salt is
// generated per call and embedded in the digest.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordHashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword compares a bcrypt digest with a plain password.
// It returns (false, nil) on a mismatch and a non-nil error only when the
// stored digest itself is unusable, so callers can tell a wrong password
// apart from a corrupted record.
func VerifyPassword(digest, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
