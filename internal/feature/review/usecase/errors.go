// Package usecase implements the business logic for the review feature.
package usecase

import "errors"

var (
	// ErrUnauthorized is returned when the caller is anonymous or does not own the review.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrReviewNotFound is returned when a review cannot be found, or a
	// delete scoped to the owner matches no row.
	ErrReviewNotFound = errors.New("review not found")

	// ErrAlreadyReviewed is returned when the user already has a review for the major.
	ErrAlreadyReviewed = errors.New("user has already reviewed this major")

	// ErrLikeNotFound is returned when no like exists for the (user, review) pair.
	ErrLikeNotFound = errors.New("like not found")

	// ErrLikeConflict is returned when a like insert loses the uniqueness race.
	// Callers should re-read current state and retry the toggle.
	ErrLikeConflict = errors.New("like already exists")
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
