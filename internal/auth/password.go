package auth

import "golang.org/x/crypto/bcrypt"

// MinPasswordLength is the only password policy: no complexity rules.
const MinPasswordLength = 6

const bcryptCost = 10

// HashPassword hashes a plaintext password with bcrypt. The salt is random, so
// hashing the same input twice yields different outputs.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword reports whether password meets the minimum length.
func ValidatePassword(password string) bool {
	return len(password) >= MinPasswordLength
}
