package userdir

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Matcher decides whether a submitted secret matches the directory's stored
// password field. The verifier applies it to every username candidate.
type Matcher func(stored, submitted string) bool

// PlainMatch compares the stored column and the submitted value directly,
// in constant time. This is the classic plaintext password column.
func PlainMatch(stored, submitted string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
}

// BcryptMatch treats the stored column as a bcrypt hash.
func BcryptMatch(stored, submitted string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)) == nil
}

// HashPassword produces a bcrypt hash suitable for a BcryptMatch directory.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("userdir: hash password: %w", err)
	}
	return string(hash), nil
}
