package auth

import (
	"regexp"

	"github.com/heartmarshall/nutrilog-backend/internal/domain"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 72 // bcrypt input limit

	msgCredentialsRequired = "Email and password are required."
	msgInvalidEmail        = "Invalid email format."
	msgWeakPassword        = "Password must be at least 6 characters."
	msgPasswordTooLong     = "Password must be at most 72 bytes."
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// RegisterInput holds parameters for email + password registration.
type RegisterInput struct {
	Email    string
	Password string
}

// Validate checks the fields in order and stops at the first failure.
func (i RegisterInput) Validate() error {
	if i.Email == "" || i.Password == "" {
		return domain.NewValidationError("email", domain.ReasonRequired, msgCredentialsRequired)
	}
	if !emailPattern.MatchString(i.Email) {
		return domain.NewValidationError("email", domain.ReasonInvalidEmail, msgInvalidEmail)
	}
	if len([]rune(i.Password)) < minPasswordLength {
		return domain.NewValidationError("password", domain.ReasonWeakPassword, msgWeakPassword)
	}
	if len(i.Password) > maxPasswordLength {
		return domain.NewValidationError("password", domain.ReasonWeakPassword, msgPasswordTooLong)
	}
	return nil
}

// LoginInput holds parameters for email + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks that both credentials are present.
func (i LoginInput) Validate() error {
	if i.Email == "" || i.Password == "" {
		return domain.NewValidationError("email", domain.ReasonRequired, msgCredentialsRequired)
	}
	return nil
}
