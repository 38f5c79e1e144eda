package usecase

import "fmt"

const (
	// minCommentLength is the minimum length of a review's text body.
	minCommentLength = 60

	minRating = 1
	maxRating = 5
)

// Ratings holds the four 1-5 ratings of a review.
type Ratings struct {
	Major           int
	CareerReadiness int
	Difficulty      int
	Satisfaction    int
}

// validate checks every rating against the [1,5] bounds and returns the
// first violation.
func (r Ratings) validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"Major rating", r.Major},
		{"Career readiness rating", r.CareerReadiness},
		{"Difficulty rating", r.Difficulty},
		{"Satisfaction rating", r.Satisfaction},
	}
	for _, c := range checks {
		if c.value < minRating || c.value > maxRating {
			return NewValidationError(fmt.Sprintf("%s must be between %d and %d", c.name, minRating, maxRating))
		}
	}
	return nil
}

// CreateReviewInput is the validated input for CreateReview.
type CreateReviewInput struct {
	Slug       string
	ReviewText string
	Ratings    Ratings
}

// Validate checks the input and returns a ValidationError citing the
// first violated rule.
func (in CreateReviewInput) Validate() error {
	if in.Slug == "" {
		return NewValidationError("Major is required")
	}
	if len(in.ReviewText) < minCommentLength {
		return NewValidationError("Review must be at least 60 characters")
	}
	return in.Ratings.validate()
}

// UpdateReviewInput is the validated input for UpdateReview.
type UpdateReviewInput struct {
	ReviewID   uint
	ReviewText string
	Ratings    Ratings
}

// Validate checks the input and returns a ValidationError citing the
// first violated rule.
func (in UpdateReviewInput) Validate() error {
	if in.ReviewID == 0 {
		return NewValidationError("Review is required")
	}
	if len(in.ReviewText) < minCommentLength {
		return NewValidationError("Review must be at least 60 characters")
	}
	return in.Ratings.validate()
}
