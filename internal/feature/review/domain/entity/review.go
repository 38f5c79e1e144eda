// Package entity defines the domain entities for the review feature.
package entity

import "time"

// Review is a student's rating of a major.
// The composite unique index on (UserID, MajorID) enforces at most one
// review per user per major; application-level existence checks are only
// a fast path for a friendlier error.
type Review struct {
	// ID is the unique identifier for the review.
	ID uint `gorm:"primaryKey"`

	// Rating is the overall 1-5 rating of the major.
	Rating int `gorm:"not null"`

	// CareerReadiness is a 1-5 rating of how well the major prepares for a career.
	CareerReadiness int `gorm:"not null"`

	// Difficulty is a 1-5 rating of the major's difficulty.
	Difficulty int `gorm:"not null"`

	// Satisfaction is a 1-5 rating of overall satisfaction.
	Satisfaction int `gorm:"not null"`

	// Comment is the free-text body of the review, at least 60 characters.
	Comment string `gorm:"type:text;not null"`

	// UserID is the owning user. Only the owner may update or delete the review.
	UserID uint `gorm:"not null;uniqueIndex:idx_reviews_user_major"`

	// MajorID is the reviewed major.
	MajorID uint `gorm:"not null;uniqueIndex:idx_reviews_user_major"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReviewLike records that a user likes a review. Existence is the only
// state; like counts are derived by aggregation.
type ReviewLike struct {
	UserID   uint `gorm:"primaryKey;autoIncrement:false"`
	ReviewID uint `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
}

// ReviewSummary is a read-model row for listing a major's reviews with
// their aggregated like counts.
type ReviewSummary struct {
	ID              uint
	Rating          int
	CareerReadiness int
	Difficulty      int
	Satisfaction    int
	Comment         string
	UserID          uint
	MajorID         uint
	LikeCount       int64
	CreatedAt       time.Time
}
