package sec

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when a password does not match its stored
// hash. It is deliberately generic; callers must not reveal which factor
// failed. Internal failures (malformed digest, RNG failure) are reported as
// distinct wrapped errors so they are never mistaken for a bad password.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ComparePassword returns [ErrInvalidCredentials] if the provided password
// does not resolve to the given hash, or a wrapped internal error if the
// comparison itself failed.
func ComparePassword[T ~string | ~[]byte](password T, hash []byte) error {
	switch err := bcrypt.CompareHashAndPassword(hash, []byte(password)); {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidCredentials
	default:
		return fmt.Errorf("password comparison failed: %w", err)
	}
}

// HashPassword generates the salted hash for a given password. Each call uses
// a fresh salt, so hashing the same password twice yields different digests.
// It errors if the password is longer than 72 bytes.
func HashPassword[T ~string | ~[]byte](password T) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("password hashing failed: %w", err)
	}
	return hash, nil
}
