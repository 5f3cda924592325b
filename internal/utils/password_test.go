package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	again, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes are salted")

	assert.True(t, VerifyPassword(hash, "hunter22"))
	assert.False(t, VerifyPassword(hash, "hunter23"))
	assert.False(t, VerifyPassword("", "hunter22"))
}

func TestCSRFToken(t *testing.T) {
	token := CSRFToken("key", "jti-1")
	assert.Len(t, token, 64)
	assert.Equal(t, token, CSRFToken("key", "jti-1"))
	assert.NotEqual(t, token, CSRFToken("key", "jti-2"))
	assert.NotEqual(t, token, CSRFToken("other", "jti-1"))

	assert.True(t, ValidCSRFToken("key", "jti-1", token))
	assert.False(t, ValidCSRFToken("key", "jti-2", token))
	assert.False(t, ValidCSRFToken("key", "jti-1", ""))
}
