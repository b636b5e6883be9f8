package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted one-way digest of plaintext using bcrypt.
//
// bcrypt generates a fresh random salt on every call, so hashing the same
// plaintext twice yields different stored values that both verify against
// the original input.
//
// cost is the bcrypt work factor; pass 0 to use bcrypt.DefaultCost.
// Returns an error if the plaintext exceeds bcrypt's 72-byte limit or the
// cost is out of range.
func HashPassword(plaintext string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether plaintext is the input originally hashed to
// produce hash.
//
// Any failure — mismatch, malformed hash, empty input — yields false; the
// function never returns an error or panics, so callers can treat the result
// as a plain verification outcome.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
