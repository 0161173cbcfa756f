package auth

import "fmt"

// AuthError carries a machine-checkable code alongside the detail.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrDuplicateEmail     = &AuthError{Code: "duplicate_email", Message: "Email already registered"}
	ErrUserNotFound       = &AuthError{Code: "not_found", Message: "User not found"}
	ErrInvalidCredentials = &AuthError{Code: "invalid_credentials", Message: "Invalid credentials"}
)
