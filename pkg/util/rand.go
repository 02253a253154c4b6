// Package util contains small helpers used across the application that
// don't fit any other package
package util

import (
	"crypto/rand"
	"encoding/hex"
	mrand "math/rand/v2"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandStr returns a short random string. Used for request IDs, so
// speed matters more than entropy here.
func RandStr(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[mrand.IntN(len(charset))]
	}
	return string(b)
}

// GenerateToken returns n random bytes hex-encoded. Unlike RandStr this
// reads from crypto/rand and is safe for auth token keys.
func GenerateToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
