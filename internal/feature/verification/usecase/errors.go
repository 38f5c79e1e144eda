// Package usecase implements the business logic for the verification feature.
package usecase

import "errors"

var (
	// ErrTokenNotFound is returned when no verification token matches the token value.
	ErrTokenNotFound = errors.New("token does not exist")

	// ErrTokenExpired is returned when the token has passed its expiration time.
	// The token row is intentionally left in place on expiry.
	ErrTokenExpired = errors.New("token has expired")

	// ErrInvalidCppEmail is returned when a cpp_email token carries a
	// non-institutional address. The token is not retired on this failure.
	ErrInvalidCppEmail = errors.New("invalid cpp email")

	// ErrEmailNotFound is returned when the account targeted by the token
	// does not exist. The token is retired on this failure.
	ErrEmailNotFound = errors.New("email does not exist")
)
