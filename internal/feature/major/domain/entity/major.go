// Package entity defines the domain entities for the major feature.
package entity

import "time"

// Major represents a college major that students can review.
// Majors are read-only from the application's perspective; they are
// seeded by an out-of-band import.
type Major struct {
	// ID is the unique identifier for the major.
	ID uint `gorm:"primaryKey"`

	// Slug is the unique human-readable key used in URLs (e.g. "computer-science").
	Slug string `gorm:"uniqueIndex;size:255;not null"`

	// Name is the display name of the major.
	Name string `gorm:"size:255;not null"`

	// Department is the department offering the major.
	Department string `gorm:"size:255"`

	// College is the college the department belongs to.
	College string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
