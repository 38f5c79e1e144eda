// Package usecase implements the business logic for the major feature.
package usecase

import "errors"

// ErrMajorNotFound is returned when a major cannot be found by slug.
var ErrMajorNotFound = errors.New("major not found")
