package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// SessionTTL is how long an issued session token stays valid.
const SessionTTL = 7 * 24 * time.Hour

const tokenBytes = 32

// GenerateSessionToken returns a URL-safe random token string.
// 32 bytes of entropy makes guessing or collision infeasible, so
// uniqueness is not checked at issuance.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
