package utils

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const passwordKeyLen = 64 // bytes of derived key stored per password

// HashPassword derives a hex-encoded PBKDF2-SHA512 key from the password,
// salted with the lowercased email. The salt is deterministic per account
// so the same (email, password) pair always produces the same hash, which
// is what lets authentication compare digests without a stored salt column.
func HashPassword(email, plain string, iterations int) string {
	salt := []byte(strings.ToLower(strings.TrimSpace(email)))
	key := pbkdf2.Key([]byte(plain), salt, iterations, passwordKeyLen, sha512.New)
	return hex.EncodeToString(key)
}

// VerifyPassword re-derives the key for the supplied password and compares
// it to the stored hash in constant time.
func VerifyPassword(storedHash, email, plain string, iterations int) bool {
	candidate := HashPassword(email, plain, iterations)
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(candidate)) == 1
}
