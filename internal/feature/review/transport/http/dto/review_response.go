package dto

import (
	"time"

	"ratemymajor_backend/internal/feature/review/domain/entity"
)

// ReviewResponse is the JSON shape of a review returned by the mutation endpoints.
type ReviewResponse struct {
	ID              uint      `json:"id"`
	Rating          int       `json:"rating"`
	CareerReadiness int       `json:"careerReadiness"`
	Difficulty      int       `json:"difficulty"`
	Satisfaction    int       `json:"satisfaction"`
	Comment         string    `json:"comment"`
	UserID          uint      `json:"userId"`
	MajorID         uint      `json:"majorId"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ReviewResponseFromEntity converts a review entity to its response shape.
func ReviewResponseFromEntity(r *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:              r.ID,
		Rating:          r.Rating,
		CareerReadiness: r.CareerReadiness,
		Difficulty:      r.Difficulty,
		Satisfaction:    r.Satisfaction,
		Comment:         r.Comment,
		UserID:          r.UserID,
		MajorID:         r.MajorID,
		CreatedAt:       r.CreatedAt,
	}
}

// ReviewSummaryResponse is the JSON shape of a review in a major's listing,
// including its aggregated like count.
type ReviewSummaryResponse struct {
	ID              uint      `json:"id"`
	Rating          int       `json:"rating"`
	CareerReadiness int       `json:"careerReadiness"`
	Difficulty      int       `json:"difficulty"`
	Satisfaction    int       `json:"satisfaction"`
	Comment         string    `json:"comment"`
	UserID          uint      `json:"userId"`
	MajorID         uint      `json:"majorId"`
	LikeCount       int64     `json:"likeCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ReviewSummaryResponseFromEntity converts a summary row to its response shape.
func ReviewSummaryResponseFromEntity(r entity.ReviewSummary) ReviewSummaryResponse {
	return ReviewSummaryResponse{
		ID:              r.ID,
		Rating:          r.Rating,
		CareerReadiness: r.CareerReadiness,
		Difficulty:      r.Difficulty,
		Satisfaction:    r.Satisfaction,
		Comment:         r.Comment,
		UserID:          r.UserID,
		MajorID:         r.MajorID,
		LikeCount:       r.LikeCount,
		CreatedAt:       r.CreatedAt,
	}
}
