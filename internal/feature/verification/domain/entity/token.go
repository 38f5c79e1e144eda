// Package entity defines the domain entities for the verification feature.
package entity

import "time"

// Purpose discriminates which account mutation a verification token authorizes.
// An absent purpose means signup verification.
type Purpose string

const (
	// PurposeCppEmail verifies an institutional email added from settings.
	PurposeCppEmail Purpose = "cpp_email"

	// PurposePrimaryEmail verifies a primary email change requested from settings.
	PurposePrimaryEmail Purpose = "primary_email"
)

// VerificationToken is a single-use token emailed to a user.
// One token table serves all three verification flows; the Purpose and
// UserID pair acts as the discriminant.
type VerificationToken struct {
	// ID is the unique identifier for the token row.
	ID uint `gorm:"primaryKey"`

	// Email is the address the token was sent to and the address the
	// resolved flow will write.
	Email string `gorm:"index;size:255;not null"`

	// Token is the opaque token value included in the confirmation link.
	Token string `gorm:"uniqueIndex;size:64;not null"`

	// Expires is the time after which the token can no longer be resolved.
	Expires time.Time `gorm:"not null"`

	// UserID identifies which user to update, set only for tokens issued
	// from an authenticated settings action.
	UserID *uint `gorm:"index"`

	// Purpose is the flow discriminant, nil for signup verification.
	Purpose *Purpose `gorm:"size:32"`

	CreatedAt time.Time
}

// IsExpired reports whether the token has passed its expiration time.
func (t *VerificationToken) IsExpired() bool {
	return time.Now().After(t.Expires)
}

// Intent is the decoded form of the Purpose/UserID discriminant pair.
// Decoding once at lookup time keeps the guard logic out of the dispatch.
type Intent interface {
	isIntent()
}

// CppEmailIntent verifies and attaches an institutional email to a user.
type CppEmailIntent struct {
	UserID uint
}

// PrimaryEmailIntent changes and verifies a user's primary email.
type PrimaryEmailIntent struct {
	UserID uint
}

// SignupIntent verifies the email of a freshly registered account.
type SignupIntent struct{}

func (CppEmailIntent) isIntent()     {}
func (PrimaryEmailIntent) isIntent() {}
func (SignupIntent) isIntent()       {}

// Intent decodes the token's discriminant into a flow intent.
// Tokens with a purpose but no user, or an unknown purpose, fall back to
// the signup flow.
func (t *VerificationToken) Intent() Intent {
	if t.Purpose != nil && t.UserID != nil {
		switch *t.Purpose {
		case PurposeCppEmail:
			return CppEmailIntent{UserID: *t.UserID}
		case PurposePrimaryEmail:
			return PrimaryEmailIntent{UserID: *t.UserID}
		}
	}
	return SignupIntent{}
}
