// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUnauthorized is returned when the caller is anonymous or the
	// principal no longer maps to a stored user.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to take an email that
	// already belongs to another account.
	ErrEmailAlreadyExists = errors.New("email already in use")

	// ErrCppEmailInUse is returned when the requested institutional email
	// already belongs to another account, as primary or as CppEmail.
	ErrCppEmailInUse = errors.New("cpp email already in use by another account")

	// ErrEmailNotFound is returned on login when no credentials-based
	// account exists for the email.
	ErrEmailNotFound = errors.New("email does not exist")

	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrIncorrectPassword is returned when the current password given to a
	// settings password change does not match.
	ErrIncorrectPassword = errors.New("incorrect password")
)

// ValidationError carries the first violated rule's message from input validation.
type ValidationError struct {
	msg string
}

// NewValidationError creates a ValidationError with the given user-facing message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

// Error returns the user-facing validation message.
func (e *ValidationError) Error() string {
	return e.msg
}
