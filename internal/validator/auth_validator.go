package validator

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrMissingField     = errors.New("missing required field")
	ErrEmptyPassword    = errors.New("passwords cannot be empty strings or spaces only")
	ErrPasswordTooShort = errors.New("password too short")
)

const minPasswordLength = 8

// ValidateRegister checks the registration form before it reaches the
// credential service.
func ValidateRegister(email, password, kennelName string) error {
	if strings.TrimSpace(kennelName) == "" {
		return ErrMissingField
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if strings.TrimSpace(password) == "" {
		return ErrEmptyPassword
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func ValidateLogin(username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return ErrMissingField
	}
	return nil
}

// ValidateResetPassword rejects empty-string or whitespace-only passwords.
func ValidateResetPassword(email, oldPassword, newPassword string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if strings.TrimSpace(oldPassword) == "" || strings.TrimSpace(newPassword) == "" {
		return ErrEmptyPassword
	}
	return nil
}

func validateEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return ErrMissingField
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
