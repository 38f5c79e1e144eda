package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"ratemymajor_backend/internal/feature/verification/domain/entity"
)

// tokenTTL is how long a verification token stays resolvable.
const tokenTTL = time.Hour

// Mailer sends verification email. Delivery failures surface to the caller
// so the user can be told to retry; they never roll back the token.
type Mailer interface {
	// SendVerificationEmail sends the confirmation link for token to email.
	SendVerificationEmail(ctx context.Context, email, token string) error
}

// tokenUsecase issues verification tokens and dispatches their email.
type tokenUsecase struct {
	tokens TokenRepository
	mailer Mailer
}

// NewTokenUsecase creates a new instance of tokenUsecase.
func NewTokenUsecase(tokens TokenRepository, mailer Mailer) *tokenUsecase {
	return &tokenUsecase{
		tokens: tokens,
		mailer: mailer,
	}
}

// Generate creates a fresh verification token for email, retiring any
// existing token for the same address first. userID and purpose are nil
// for signup verification.
func (u *tokenUsecase) Generate(ctx context.Context, email string, userID *uint, purpose *entity.Purpose) (*entity.VerificationToken, error) {
	existing, err := u.tokens.FindByEmail(ctx, email)
	if err == nil {
		if err := u.tokens.Delete(ctx, existing.ID); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, ErrTokenNotFound) {
		return nil, err
	}

	token := &entity.VerificationToken{
		Email:   email,
		Token:   uuid.NewString(),
		Expires: time.Now().Add(tokenTTL),
		UserID:  userID,
		Purpose: purpose,
	}
	if err := u.tokens.Create(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}

// RequestVerification generates a token and emails its confirmation link.
// purpose is the string form of the flow discriminant, empty for signup.
// The auth feature consumes this through its own interface, so the
// signature stays free of this package's types.
func (u *tokenUsecase) RequestVerification(ctx context.Context, email string, userID *uint, purpose string) error {
	var p *entity.Purpose
	if purpose != "" {
		pp := entity.Purpose(purpose)
		p = &pp
	}

	token, err := u.Generate(ctx, email, userID, p)
	if err != nil {
		return err
	}
	return u.mailer.SendVerificationEmail(ctx, token.Email, token.Token)
}
