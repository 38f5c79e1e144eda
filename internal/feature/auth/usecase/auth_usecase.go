package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"ratemymajor_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum number of characters for a password.
	minPasswordLength = 8
)

// Verification-token purposes understood by the verification feature.
// Kept as plain strings so auth does not depend on that feature's packages.
const (
	purposeCppEmail     = "cpp_email"
	purposePrimaryEmail = "primary_email"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user.
	// It returns ErrEmailAlreadyExists when the email unique index rejects the row.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by primary email.
	// It returns ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by ID.
	// It returns ErrUserNotFound when no user matches.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByCppEmail retrieves a user other than excludeID holding cppEmail
	// as their institutional email. It returns ErrUserNotFound when none matches.
	FindByCppEmail(ctx context.Context, cppEmail string, excludeID uint) (*entity.User, error)

	// Update persists changed fields of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user and, with it, the user's reviews and likes.
	Delete(ctx context.Context, id uint) error
}

// JWTGenerator signs access tokens for authenticated users.
type JWTGenerator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID uint, email string, isOAuth bool) (string, error)
}

// VerificationRequester issues a verification token for email and sends its
// confirmation link. purpose is "cpp_email", "primary_email", or empty for
// signup verification. Implemented by the verification feature.
type VerificationRequester interface {
	RequestVerification(ctx context.Context, email string, userID *uint, purpose string) error
}

// LoginResult is the outcome of a successful (or deferred) login.
// Token is empty when the account's email is still unverified; Message then
// tells the user a fresh confirmation email went out.
type LoginResult struct {
	Token   string
	Message string
}

// authUsecase implements signup and login.
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
	verification VerificationRequester
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator, verification VerificationRequester) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
		verification: verification,
	}
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return NewValidationError(fmt.Sprintf("Minimum %d characters required", minPasswordLength))
	}
	return nil
}

// Signup registers a new user with a hashed password and sends the signup
// verification email. The account stays unverified until the token resolves.
func (u *authUsecase) Signup(ctx context.Context, name, email, password string) error {
	if name == "" {
		return NewValidationError("Name is required")
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	// Advisory pre-check; the unique index on email is the actual guarantee.
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	hashedStr := string(hashed)

	user := &entity.User{Name: name, Email: email, Password: &hashedStr}
	if err := u.users.Create(ctx, user); err != nil {
		return err
	}

	return u.verification.RequestVerification(ctx, email, nil, "")
}

// Login authenticates a user by email and password.
//
// Accounts without a password (OAuth-only) are reported as nonexistent, the
// same as unknown emails. An account with an unverified email gets a fresh
// confirmation email instead of a token.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, err
	}
	if user.Password == nil {
		return nil, ErrEmailNotFound
	}

	if user.EmailVerified == nil {
		if err := u.verification.RequestVerification(ctx, user.Email, nil, ""); err != nil {
			return nil, err
		}
		return &LoginResult{Message: "Confirmation email sent!"}, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email, user.IsOAuth)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &LoginResult{Token: token, Message: "Login Success!"}, nil
}
