// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ratemymajor_backend/internal/feature/auth/domain/entity"
	"ratemymajor_backend/internal/feature/auth/usecase"
	reviewentity "ratemymajor_backend/internal/feature/review/domain/entity"
	tokenentity "ratemymajor_backend/internal/feature/verification/domain/entity"
	verificationusecase "ratemymajor_backend/internal/feature/verification/usecase"
)

// userPostgres is a PostgreSQL implementation of the user repository interfaces.
// It relies on gorm's TranslateError so unique-index violations surface as
// gorm.ErrDuplicatedKey on every supported driver.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time checks against every consumer-defined interface this adapter serves.
var (
	_ usecase.UserRepository             = (*userPostgres)(nil)
	_ verificationusecase.UserRepository = (*userPostgres)(nil)
)

// NewUserPostgres creates a new instance of userPostgres.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create persists a new user.
// An email unique-index violation maps to ErrEmailAlreadyExists.
func (r *userPostgres) Create(ctx context.Context, user *entity.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by primary email.
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByCppEmail retrieves a user other than excludeID holding cppEmail as
// their institutional email.
func (r *userPostgres) FindByCppEmail(ctx context.Context, cppEmail string, excludeID uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("cpp_email = ? AND id <> ?", cppEmail, excludeID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update persists the user's current field values.
func (r *userPostgres) Update(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Delete removes a user together with their reviews, their likes, likes on
// their reviews, and any pending verification tokens, in one transaction.
func (r *userPostgres) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reviewIDs []uint
		if err := tx.Model(&reviewentity.Review{}).Where("user_id = ?", id).Pluck("id", &reviewIDs).Error; err != nil {
			return err
		}

		likes := tx.Where("user_id = ?", id)
		if len(reviewIDs) > 0 {
			likes = likes.Or("review_id IN ?", reviewIDs)
		}
		if err := likes.Delete(&reviewentity.ReviewLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&reviewentity.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&tokenentity.VerificationToken{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&entity.User{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return usecase.ErrUserNotFound
		}
		return nil
	})
}
