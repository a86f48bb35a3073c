package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSessionToken(t *testing.T) {
	token, err := GenerateSessionToken()

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// 32 raw bytes, URL-safe encoded without padding
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	assert.NoError(t, err)
	assert.Len(t, decoded, 32)
}

func TestGenerateSessionToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateSessionToken()
		assert.NoError(t, err)
		assert.False(t, seen[token], "generated a duplicate token")
		seen[token] = true
	}
}
