package utils

import "golang.org/x/crypto/bcrypt" // Password hashing

// ErrPasswordTooLong is returned for passwords bcrypt cannot hash (over 72 bytes)
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// HashPassword returns a salted bcrypt hash of password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword reports whether password matches the stored hash
func VerifyPassword(hash, password string) bool {
	if hash == "" {
		return false // Users without a credential can never log in
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
