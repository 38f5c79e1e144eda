package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"ratemymajor_backend/internal/shared/campus"
	"ratemymajor_backend/internal/shared/identity"
)

// SettingsInput is the validated input for UpdateSettings.
// Nil fields mean "leave unchanged".
type SettingsInput struct {
	Name        *string
	Email       *string
	CppEmail    *string
	Password    *string
	NewPassword *string
}

// Validate checks the input and returns a ValidationError citing the
// first violated rule.
func (in SettingsInput) Validate() error {
	if in.CppEmail != nil && *in.CppEmail != "" && !campus.IsStudentEmail(*in.CppEmail) {
		return NewValidationError(fmt.Sprintf("Must be a CPP student email (%s)", campus.EmailSuffix))
	}
	if in.Password != nil && *in.Password != "" && (in.NewPassword == nil || *in.NewPassword == "") {
		return NewValidationError("New password is required!")
	}
	if in.NewPassword != nil && *in.NewPassword != "" && (in.Password == nil || *in.Password == "") {
		return NewValidationError("Password is required!")
	}
	if in.NewPassword != nil && *in.NewPassword != "" {
		if err := validatePassword(*in.NewPassword); err != nil {
			return err
		}
	}
	return nil
}

// settingsUsecase implements the authenticated settings mutations.
type settingsUsecase struct {
	users        UserRepository
	verification VerificationRequester
}

// NewSettingsUsecase creates a new instance of settingsUsecase.
func NewSettingsUsecase(users UserRepository, verification VerificationRequester) *settingsUsecase {
	return &settingsUsecase{
		users:        users,
		verification: verification,
	}
}

// UpdateSettings applies the requested account changes and returns a
// user-facing success message.
//
// Email-bearing changes never write directly: a CppEmail request or a
// primary email change only issues a verification token and stops; the
// verification flow performs the actual write once the link resolves.
func (u *settingsUsecase) UpdateSettings(ctx context.Context, principal *identity.Principal, in SettingsInput) (string, error) {
	if principal == nil {
		return "", ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return "", err
	}

	user, err := u.users.FindByID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrUnauthorized
		}
		return "", err
	}

	// OAuth accounts delegate email and password to the provider.
	if principal.IsOAuth {
		in.Email = nil
		in.Password = nil
		in.NewPassword = nil
	}

	if in.CppEmail != nil && *in.CppEmail != "" {
		cppEmail := strings.ToLower(*in.CppEmail)

		// Already verified for this exact address: nothing to send, fall
		// through and let the remaining fields update.
		if !(user.CppEmail != nil && *user.CppEmail == cppEmail && user.CppEmailVerified != nil) {
			if other, err := u.users.FindByEmail(ctx, cppEmail); err == nil && other.ID != user.ID {
				return "", ErrCppEmailInUse
			} else if err != nil && !errors.Is(err, ErrUserNotFound) {
				return "", err
			}
			if _, err := u.users.FindByCppEmail(ctx, cppEmail, user.ID); err == nil {
				return "", ErrCppEmailInUse
			} else if !errors.Is(err, ErrUserNotFound) {
				return "", err
			}

			if err := u.verification.RequestVerification(ctx, cppEmail, &user.ID, purposeCppEmail); err != nil {
				return "", err
			}
			return "Verification email sent to your CPP email!", nil
		}
	}

	if in.Email != nil && *in.Email != "" && *in.Email != user.Email {
		if other, err := u.users.FindByEmail(ctx, *in.Email); err == nil && other.ID != user.ID {
			return "", ErrEmailAlreadyExists
		} else if err != nil && !errors.Is(err, ErrUserNotFound) {
			return "", err
		}

		if err := u.verification.RequestVerification(ctx, *in.Email, &user.ID, purposePrimaryEmail); err != nil {
			return "", err
		}
		return "Verification email sent!", nil
	}

	if in.Password != nil && *in.Password != "" && in.NewPassword != nil && *in.NewPassword != "" && user.Password != nil {
		if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(*in.Password)); err != nil {
			return "", ErrIncorrectPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("failed to hash password: %w", err)
		}
		hashedStr := string(hashed)
		user.Password = &hashedStr
	}

	if in.Name != nil && *in.Name != "" {
		user.Name = *in.Name
	}

	if err := u.users.Update(ctx, user); err != nil {
		return "", err
	}
	return "Settings Updated!", nil
}

// DeleteAccount removes the principal's account. Reviews and likes owned by
// the account go with it at the storage layer.
func (u *settingsUsecase) DeleteAccount(ctx context.Context, principal *identity.Principal) (string, error) {
	if principal == nil {
		return "", ErrUnauthorized
	}
	if err := u.users.Delete(ctx, principal.ID); err != nil {
		return "", err
	}
	return "Account deleted successfully!", nil
}
