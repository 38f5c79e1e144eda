// Package adapters provides repository implementations for the verification feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ratemymajor_backend/internal/feature/verification/domain/entity"
	"ratemymajor_backend/internal/feature/verification/usecase"
)

// tokenPostgres is a PostgreSQL implementation of the TokenRepository interface.
type tokenPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure tokenPostgres implements TokenRepository.
var _ usecase.TokenRepository = (*tokenPostgres)(nil)

// NewTokenPostgres creates a new instance of tokenPostgres.
func NewTokenPostgres(db *gorm.DB) *tokenPostgres {
	return &tokenPostgres{db: db}
}

// FindByToken retrieves a token by its opaque token value.
func (r *tokenPostgres) FindByToken(ctx context.Context, token string) (*entity.VerificationToken, error) {
	var t entity.VerificationToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindByEmail retrieves the token issued for an email address.
func (r *tokenPostgres) FindByEmail(ctx context.Context, email string) (*entity.VerificationToken, error) {
	var t entity.VerificationToken
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Create persists a new token.
func (r *tokenPostgres) Create(ctx context.Context, token *entity.VerificationToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// Delete retires a token by ID.
func (r *tokenPostgres) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.VerificationToken{}, "id = ?", id).Error
}
