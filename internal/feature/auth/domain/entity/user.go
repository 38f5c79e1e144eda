// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and the verification state that
// gates review writes.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the user's display name.
	Name string `gorm:"size:255"`

	// Email is the user's primary email address.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// EmailVerified is the time the primary email was verified, nil if unverified.
	EmailVerified *time.Time

	// CppEmail is the user's institutional email, nil until one is verified.
	// It is only ever written by the verification flow.
	CppEmail *string `gorm:"index;size:255"`

	// CppEmailVerified is the time the institutional email was verified.
	CppEmailVerified *time.Time

	// StudentVerified reports whether the user has proven student status,
	// either through an institutional primary email or a verified CppEmail.
	StudentVerified bool `gorm:"not null;default:false"`

	// Password is the bcrypt hash of the user's password.
	// It is nil for OAuth-only accounts.
	Password *string `gorm:"size:255"`

	// IsOAuth reports whether the account is managed by an OAuth provider.
	// OAuth users cannot change their email or password here.
	IsOAuth bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasVerifiedCppEmail reports whether the user holds a verified institutional email.
func (u *User) HasVerifiedCppEmail() bool {
	return u.CppEmail != nil && u.CppEmailVerified != nil
}
