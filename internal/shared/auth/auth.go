// Package auth implements the shared-secret check guarding the file operation
// endpoints.
//
// The configured token is digested once when the server is built; callers are
// verified by digesting their candidate token and comparing hex strings.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the lowercase hex SHA-256 digest of token.
func Digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether candidate digests to expected. Any mismatch,
// including a length mismatch, yields false.
func Verify(candidate, expected string) bool {
	return Digest(candidate) == expected
}
