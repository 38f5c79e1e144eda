// Package dto defines data transfer objects for the review feature's HTTP transport layer.
package dto

// RatingsReq carries the four 1-5 ratings of a review submission.
// Range checks live in the usecase so the error cites the violated rule.
type RatingsReq struct {
	Major           int `json:"major"`
	CareerReadiness int `json:"careerReadiness"`
	Difficulty      int `json:"difficulty"`
	Satisfaction    int `json:"satisfaction"`
}

// CreateReviewReq represents the request body for POST /reviews.
type CreateReviewReq struct {
	Slug       string     `json:"slug"`
	ReviewText string     `json:"reviewText"`
	Ratings    RatingsReq `json:"ratings"`
}

// UpdateReviewReq represents the request body for PUT /reviews/:id.
// The review id rides on the path.
type UpdateReviewReq struct {
	ReviewText string     `json:"reviewText"`
	Ratings    RatingsReq `json:"ratings"`
}
