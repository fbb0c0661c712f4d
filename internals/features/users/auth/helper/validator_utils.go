package helper

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func isStrongEnough(password string) bool {
	hasLetter := regexp.MustCompile(`[A-Za-z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)
	return len(password) >= 8 && hasLetter && hasNumber
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash compares a stored bcrypt hash against a plain password.
func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func ValidateRegisterInput(userName, email, password string) error {
	if strings.TrimSpace(userName) == "" {
		return errors.New("username is required")
	}
	if len(strings.TrimSpace(userName)) < 3 {
		return errors.New("username must be at least 3 characters")
	}
	if !isValidEmail(strings.TrimSpace(email)) {
		return errors.New("invalid email format")
	}
	if !isStrongEnough(password) {
		return errors.New("password must be at least 8 characters with letters and numbers")
	}
	return nil
}

func ValidateLoginInput(identifier, password string) error {
	if strings.TrimSpace(identifier) == "" {
		return errors.New("identifier is required")
	}
	if password == "" {
		return errors.New("password is required")
	}
	return nil
}

func ValidateResetPassword(email, newPassword string) error {
	if !isValidEmail(strings.TrimSpace(email)) {
		return errors.New("invalid email format")
	}
	if !isStrongEnough(newPassword) {
		return errors.New("password must be at least 8 characters with letters and numbers")
	}
	return nil
}
