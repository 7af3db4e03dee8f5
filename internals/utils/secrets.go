package utils

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost keeps verification in the tens-of-milliseconds range.
const bcryptCost = 10

// HashSecret hashes a password or OTP code with bcrypt (per-record salt).
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckSecret compares a plaintext password or OTP code against its bcrypt hash.
func CheckSecret(hashed string, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(secret)) == nil
}

// HashToken hashes a reset token for storage. Tokens are JWTs and exceed
// bcrypt's 72-byte input limit, so they are reduced to a SHA-256 hex digest
// first; the stored value still carries bcrypt's per-record salt and cost.
func HashToken(token string) (string, error) {
	return HashSecret(digest(token))
}

// CheckToken compares a raw reset token against its stored hash.
func CheckToken(hashed string, token string) bool {
	return CheckSecret(hashed, digest(token))
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
