package utils

import (
	"errors"  // Error values
	"strconv" // User id encoding
	"time"    // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
	"github.com/google/uuid"       // Token ids
)

// AccessTokenTTL is how long an access token stays valid
const AccessTokenTTL = 24 * time.Hour

// ErrInvalidSubject is returned when a token subject is not a user id
var ErrInvalidSubject = errors.New("token subject is not a user id")

// JWT Claims
type Claims struct {
	jwt.RegisteredClaims // Standard JWT claims: sub carries the user id, jti the token id
}

// UserID returns the user id carried in the subject claim
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidSubject
	}
	return uint(id), nil
}

// TokenManager issues and verifies signed access tokens
type TokenManager struct {
	secret []byte           // HMAC signing key
	ttl    time.Duration    // Token lifetime
	now    func() time.Time // Clock, replaceable in tests
}

// NewTokenManager returns a TokenManager signing with secret
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: AccessTokenTTL, now: time.Now}
}

// WithClock returns a copy of the manager reading time from now
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	clone := *m
	clone.now = now
	return &clone
}

// Generate creates a token for a given user id
func (m *TokenManager) Generate(userID uint) (string, *Claims, error) {
	issued := m.now()
	// Set token claims
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10), // User id as subject
			ID:        uuid.NewString(),                       // Unique token id for revocation
			IssuedAt:  jwt.NewNumericDate(issued),             // Issued at current time
			ExpiresAt: jwt.NewNumericDate(issued.Add(m.ttl)),  // Token expires in 24 hours
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	signed, err := token.SignedString(m.secret)                // Sign the token with the secret
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// Parse parses and validates a token string
func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return m.secret, nil // Return the secret key for validation
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), // Reject alg switching
		jwt.WithExpirationRequired(),                                 // Tokens must expire
		jwt.WithTimeFunc(m.now),                                      // Validate against the manager clock
	)
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	if _, err := claims.UserID(); err != nil {
		return nil, err
	}
	return claims, nil
}
