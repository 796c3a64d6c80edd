package services

import (
	"fmt"

	"sportsclub-app/internal/apperr"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLen = 4
	maxPasswordLen = 72 // bcrypt ignores anything longer
)

// ValidatePassword requires 4 to 72 bytes with at least one letter and one digit.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return apperr.ErrPasswordInvalid
	}
	hasLetter := false
	hasDigit := false
	for _, c := range password {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
			hasLetter = true
		case '0' <= c && c <= '9':
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return apperr.ErrPasswordInvalid
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether password matches the bcrypt hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
