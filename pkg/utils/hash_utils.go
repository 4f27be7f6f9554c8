package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a password with bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash compares a password against a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CheckPassword verifies a submitted password against the stored credential.
// Bcrypt-hashed values are compared with bcrypt; anything else falls back to
// an exact string match, because legacy officer rows store plaintext
// passwords. The plaintext path is a known security gap carried over from
// the legacy data, not an accepted practice for new credentials.
func CheckPassword(password, stored string) bool {
	if IsBcryptHash(stored) {
		return CheckPasswordHash(password, stored)
	}
	return stored != "" && stored == password
}

// IsBcryptHash reports whether a stored credential looks like a bcrypt hash.
func IsBcryptHash(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}
