package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrCorruptHash is returned when a stored digest is not a well-formed bcrypt hash.
var ErrCorruptHash = errors.New("corrupt password hash")

// Hash returns a salted bcrypt digest of the plaintext password.
// Two calls with the same input produce different digests.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare checks a plaintext password against a stored digest.
// It returns (true, nil) on a match, (false, nil) on a mismatch and
// (false, ErrCorruptHash) when the digest itself is malformed.
func Compare(hash, plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, ErrCorruptHash
	}
}
