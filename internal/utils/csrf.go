package utils

import (
	"crypto/hmac"   // Keyed hashing
	"crypto/sha256" // Hash function
	"encoding/hex"  // Token encoding
)

// CSRFToken derives the double-submit token bound to a token id
func CSRFToken(secret, tokenID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(tokenID))
	return hex.EncodeToString(mac.Sum(nil))
}

// ValidCSRFToken compares a submitted token in constant time
func ValidCSRFToken(secret, tokenID, submitted string) bool {
	if submitted == "" {
		return false
	}
	return hmac.Equal([]byte(CSRFToken(secret, tokenID)), []byte(submitted))
}
