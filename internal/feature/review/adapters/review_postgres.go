// Package adapters provides repository implementations for the review feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ratemymajor_backend/internal/feature/review/domain/entity"
	"ratemymajor_backend/internal/feature/review/usecase"
)

// reviewPostgres is a PostgreSQL implementation of the ReviewRepository interface.
// It relies on gorm's TranslateError so unique-index violations surface as
// gorm.ErrDuplicatedKey on every supported driver.
type reviewPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure reviewPostgres implements ReviewRepository.
var _ usecase.ReviewRepository = (*reviewPostgres)(nil)

// NewReviewPostgres creates a new instance of reviewPostgres.
func NewReviewPostgres(db *gorm.DB) *reviewPostgres {
	return &reviewPostgres{db: db}
}

// FindByID retrieves a review by ID.
func (r *reviewPostgres) FindByID(ctx context.Context, id uint) (*entity.Review, error) {
	var review entity.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

// FindByUserAndMajor retrieves the user's review of a major.
func (r *reviewPostgres) FindByUserAndMajor(ctx context.Context, userID, majorID uint) (*entity.Review, error) {
	var review entity.Review
	if err := r.db.WithContext(ctx).Where("user_id = ? AND major_id = ?", userID, majorID).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

// Create persists a new review.
// A (user_id, major_id) unique-index violation maps to ErrAlreadyReviewed.
func (r *reviewPostgres) Create(ctx context.Context, review *entity.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrAlreadyReviewed
		}
		return err
	}
	return nil
}

// Update persists the review's current field values.
func (r *reviewPostgres) Update(ctx context.Context, review *entity.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

// DeleteOwned deletes the review only when both id and owner match, then
// removes its likes. A non-owner delete matches zero rows and returns
// ErrReviewNotFound.
func (r *reviewPostgres) DeleteOwned(ctx context.Context, id, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Review{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return usecase.ErrReviewNotFound
		}
		return tx.Where("review_id = ?", id).Delete(&entity.ReviewLike{}).Error
	})
}

// ListByMajor retrieves a major's reviews with aggregated like counts, newest first.
func (r *reviewPostgres) ListByMajor(ctx context.Context, majorID uint) ([]entity.ReviewSummary, error) {
	var rows []entity.ReviewSummary
	err := r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.id, reviews.rating, reviews.career_readiness, reviews.difficulty, reviews.satisfaction, reviews.comment, reviews.user_id, reviews.major_id, reviews.created_at, COUNT(review_likes.review_id) AS like_count").
		Joins("LEFT JOIN review_likes ON review_likes.review_id = reviews.id").
		Where("reviews.major_id = ?", majorID).
		Group("reviews.id").
		Order("reviews.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindLike retrieves the like for a (user, review) pair.
func (r *reviewPostgres) FindLike(ctx context.Context, userID, reviewID uint) (*entity.ReviewLike, error) {
	var like entity.ReviewLike
	if err := r.db.WithContext(ctx).Where("user_id = ? AND review_id = ?", userID, reviewID).First(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrLikeNotFound
		}
		return nil, err
	}
	return &like, nil
}

// CreateLike persists a like.
// A composite-key violation maps to ErrLikeConflict so callers can re-read
// and retry the toggle.
func (r *reviewPostgres) CreateLike(ctx context.Context, like *entity.ReviewLike) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrLikeConflict
		}
		return err
	}
	return nil
}

// DeleteLike removes the like for a (user, review) pair.
func (r *reviewPostgres) DeleteLike(ctx context.Context, userID, reviewID uint) error {
	result := r.db.WithContext(ctx).Where("user_id = ? AND review_id = ?", userID, reviewID).Delete(&entity.ReviewLike{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrLikeNotFound
	}
	return nil
}
