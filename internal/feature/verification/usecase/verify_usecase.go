package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	authentity "ratemymajor_backend/internal/feature/auth/domain/entity"
	authusecase "ratemymajor_backend/internal/feature/auth/usecase"
	"ratemymajor_backend/internal/feature/verification/domain/entity"
	"ratemymajor_backend/internal/shared/campus"
)

// TokenRepository abstracts the persistence layer for verification tokens.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TokenRepository interface {
	// FindByToken retrieves a token by its opaque token value.
	// It returns ErrTokenNotFound when no token matches.
	FindByToken(ctx context.Context, token string) (*entity.VerificationToken, error)

	// FindByEmail retrieves the token issued for an email address.
	// It returns ErrTokenNotFound when no token matches.
	FindByEmail(ctx context.Context, email string) (*entity.VerificationToken, error)

	// Create persists a new token.
	Create(ctx context.Context, token *entity.VerificationToken) error

	// Delete retires a token so it cannot be resolved again.
	Delete(ctx context.Context, id uint) error
}

// UserRepository abstracts the user lookups and writes the verification flows need.
type UserRepository interface {
	// FindByID retrieves a user by ID.
	// It returns the auth feature's ErrUserNotFound when no user matches.
	FindByID(ctx context.Context, id uint) (*authentity.User, error)

	// FindByEmail retrieves a user by primary email.
	// It returns the auth feature's ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*authentity.User, error)

	// Update persists changed fields of an existing user.
	Update(ctx context.Context, user *authentity.User) error
}

// Success messages returned by Resolve, one per flow.
const (
	msgCppEmailVerified = "CPP email verified! You can now add reviews."
	msgEmailChanged     = "Email changed and verified!"
	msgEmailVerified    = "Email verified!"
)

// verifyUsecase resolves a verification token into one of three mutually
// exclusive account-state transitions.
type verifyUsecase struct {
	tokens TokenRepository
	users  UserRepository
}

// NewVerifyUsecase creates a new instance of verifyUsecase.
func NewVerifyUsecase(tokens TokenRepository, users UserRepository) *verifyUsecase {
	return &verifyUsecase{
		tokens: tokens,
		users:  users,
	}
}

// Resolve consumes a token value and applies the account mutation its
// intent authorizes, returning a user-facing success message.
//
// The check order is fixed: existence, then expiry, then flow dispatch.
// Expired tokens never reach flow-specific logic and are not deleted;
// they stay until a later differently-failing attempt or external cleanup.
func (u *verifyUsecase) Resolve(ctx context.Context, token string) (string, error) {
	existing, err := u.tokens.FindByToken(ctx, token)
	if err != nil {
		return "", err
	}

	if existing.IsExpired() {
		return "", ErrTokenExpired
	}

	switch intent := existing.Intent().(type) {
	case entity.CppEmailIntent:
		return u.resolveCppEmail(ctx, existing, intent)
	case entity.PrimaryEmailIntent:
		return u.resolvePrimaryEmail(ctx, existing, intent)
	case entity.SignupIntent:
		return u.resolveSignup(ctx, existing)
	default:
		return "", fmt.Errorf("unhandled token intent %T", intent)
	}
}

// resolveCppEmail attaches a verified institutional email to the user.
// The primary email and its verification state are untouched.
func (u *verifyUsecase) resolveCppEmail(ctx context.Context, token *entity.VerificationToken, intent entity.CppEmailIntent) (string, error) {
	// Keep the token on a format failure so the user can request a
	// corrected email under the same link before it expires.
	if !campus.IsStudentEmail(token.Email) {
		return "", ErrInvalidCppEmail
	}

	user, err := u.users.FindByID(ctx, intent.UserID)
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			return "", u.retireWith(ctx, token, ErrEmailNotFound)
		}
		return "", err
	}

	now := time.Now()
	user.CppEmail = &token.Email
	user.CppEmailVerified = &now
	user.StudentVerified = true

	if err := u.users.Update(ctx, user); err != nil {
		return "", err
	}
	if err := u.tokens.Delete(ctx, token.ID); err != nil {
		return "", err
	}
	return msgCppEmailVerified, nil
}

// resolvePrimaryEmail changes and verifies the user's primary email.
// A previously earned student-verified status is never revoked by the change.
func (u *verifyUsecase) resolvePrimaryEmail(ctx context.Context, token *entity.VerificationToken, intent entity.PrimaryEmailIntent) (string, error) {
	user, err := u.users.FindByID(ctx, intent.UserID)
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			return "", u.retireWith(ctx, token, ErrEmailNotFound)
		}
		return "", err
	}

	now := time.Now()
	user.Email = token.Email
	user.EmailVerified = &now
	user.StudentVerified = campus.IsStudentEmail(token.Email) || user.HasVerifiedCppEmail()

	if err := u.users.Update(ctx, user); err != nil {
		return "", err
	}
	if err := u.tokens.Delete(ctx, token.ID); err != nil {
		return "", err
	}
	return msgEmailChanged, nil
}

// resolveSignup verifies the email of a freshly registered account.
// The token is retired whether or not the account still exists.
func (u *verifyUsecase) resolveSignup(ctx context.Context, token *entity.VerificationToken) (string, error) {
	user, err := u.users.FindByEmail(ctx, token.Email)
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			return "", u.retireWith(ctx, token, ErrEmailNotFound)
		}
		return "", err
	}

	now := time.Now()
	user.Email = token.Email
	user.EmailVerified = &now
	user.StudentVerified = campus.IsStudentEmail(token.Email)

	if err := u.users.Update(ctx, user); err != nil {
		return "", err
	}
	if err := u.tokens.Delete(ctx, token.ID); err != nil {
		return "", err
	}
	return msgEmailVerified, nil
}

// retireWith deletes the token and returns cause, unless the delete itself fails.
func (u *verifyUsecase) retireWith(ctx context.Context, token *entity.VerificationToken, cause error) error {
	if err := u.tokens.Delete(ctx, token.ID); err != nil {
		return err
	}
	return cause
}
