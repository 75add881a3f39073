// Package account carries the client-side validation for the register form.
// Validation failures block submission locally and never reach the network.
package account

import (
	"fmt"
	"strings"
	"unicode"
)

// RegisterForm is the register page's form state.
type RegisterForm struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
	DateOfBirth string
}

// Validate checks required fields and password strength before any network
// call is made.
func (f RegisterForm) Validate() error {
	if strings.TrimSpace(f.FirstName) == "" {
		return fmt.Errorf("first name is required")
	}
	if strings.TrimSpace(f.LastName) == "" {
		return fmt.Errorf("last name is required")
	}
	if strings.TrimSpace(f.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(f.Email, "@") {
		return fmt.Errorf("email address is not valid")
	}
	return ValidatePasswordStrength(f.Password)
}

// ValidatePasswordStrength checks if password meets security requirements:
// - At least 8 characters long
// - Contains uppercase and lowercase letters
// - Contains at least one number
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	var (
		hasUpper  bool
		hasLower  bool
		hasNumber bool
	)

	for _, char := range password {
		if unicode.IsUpper(char) {
			hasUpper = true
		} else if unicode.IsLower(char) {
			hasLower = true
		} else if unicode.IsDigit(char) {
			hasNumber = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must contain at least one number")
	}

	return nil
}
