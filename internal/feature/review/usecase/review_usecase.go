package usecase

import (
	"context"
	"errors"

	majorentity "ratemymajor_backend/internal/feature/major/domain/entity"
	"ratemymajor_backend/internal/feature/review/domain/entity"
	"ratemymajor_backend/internal/shared/identity"
)

// ReviewRepository abstracts the persistence layer for review entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ReviewRepository interface {
	// FindByID retrieves a review by ID.
	// It returns ErrReviewNotFound when no review matches.
	FindByID(ctx context.Context, id uint) (*entity.Review, error)

	// FindByUserAndMajor retrieves the user's review of a major.
	// It returns ErrReviewNotFound when no review matches.
	FindByUserAndMajor(ctx context.Context, userID, majorID uint) (*entity.Review, error)

	// Create persists a new review.
	// It returns ErrAlreadyReviewed when the (user, major) unique index rejects the row.
	Create(ctx context.Context, review *entity.Review) error

	// Update persists changed rating fields and comment of an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// DeleteOwned deletes the review only if it is owned by userID, in a
	// single atomic condition. It returns ErrReviewNotFound when no row matched.
	DeleteOwned(ctx context.Context, id, userID uint) error

	// ListByMajor retrieves a major's reviews with aggregated like counts,
	// newest first.
	ListByMajor(ctx context.Context, majorID uint) ([]entity.ReviewSummary, error)

	// FindLike retrieves the like for a (user, review) pair.
	// It returns ErrLikeNotFound when no like exists.
	FindLike(ctx context.Context, userID, reviewID uint) (*entity.ReviewLike, error)

	// CreateLike persists a like.
	// It returns ErrLikeConflict when the composite unique key rejects the row.
	CreateLike(ctx context.Context, like *entity.ReviewLike) error

	// DeleteLike removes the like for a (user, review) pair.
	// It returns ErrLikeNotFound when no row matched.
	DeleteLike(ctx context.Context, userID, reviewID uint) error
}

// MajorFinder resolves majors referenced by review mutations.
type MajorFinder interface {
	// FindBySlug retrieves a major by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*majorentity.Major, error)
}

// reviewUsecase implements the review mutation service.
type reviewUsecase struct {
	reviews ReviewRepository
	majors  MajorFinder
}

// NewReviewUsecase creates a new instance of reviewUsecase.
func NewReviewUsecase(reviews ReviewRepository, majors MajorFinder) *reviewUsecase {
	return &reviewUsecase{
		reviews: reviews,
		majors:  majors,
	}
}

// CreateReview creates the principal's review of the major identified by slug.
// A user may hold at most one review per major.
func (u *reviewUsecase) CreateReview(ctx context.Context, principal *identity.Principal, in CreateReviewInput) (*entity.Review, error) {
	if principal == nil {
		return nil, ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	major, err := u.majors.FindBySlug(ctx, in.Slug)
	if err != nil {
		return nil, err
	}

	// Advisory pre-check for a friendly error. Under concurrent calls both
	// sides can pass it; the (user_id, major_id) unique index is the
	// actual guarantee and Create maps its violation to ErrAlreadyReviewed.
	_, err = u.reviews.FindByUserAndMajor(ctx, principal.ID, major.ID)
	if err == nil {
		return nil, ErrAlreadyReviewed
	}
	if !errors.Is(err, ErrReviewNotFound) {
		return nil, err
	}

	review := &entity.Review{
		Rating:          in.Ratings.Major,
		CareerReadiness: in.Ratings.CareerReadiness,
		Difficulty:      in.Ratings.Difficulty,
		Satisfaction:    in.Ratings.Satisfaction,
		Comment:         in.ReviewText,
		UserID:          principal.ID,
		MajorID:         major.ID,
	}
	if err := u.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// UpdateReview updates the rating fields and comment of a review owned by
// the principal. Owner and major are never altered.
func (u *reviewUsecase) UpdateReview(ctx context.Context, principal *identity.Principal, in UpdateReviewInput) (*entity.Review, error) {
	if principal == nil {
		return nil, ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	review, err := u.reviews.FindByID(ctx, in.ReviewID)
	if err != nil {
		return nil, err
	}
	// Ownership is checked after existence: a missing review and a
	// not-owned review are distinct failure modes.
	if review.UserID != principal.ID {
		return nil, ErrUnauthorized
	}

	review.Rating = in.Ratings.Major
	review.CareerReadiness = in.Ratings.CareerReadiness
	review.Difficulty = in.Ratings.Difficulty
	review.Satisfaction = in.Ratings.Satisfaction
	review.Comment = in.ReviewText

	if err := u.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview deletes the principal's review. The owner condition rides on
// the delete itself, so a review owned by someone else matches zero rows
// and surfaces ErrReviewNotFound rather than a silent success.
func (u *reviewUsecase) DeleteReview(ctx context.Context, principal *identity.Principal, reviewID uint) error {
	if principal == nil {
		return ErrUnauthorized
	}
	return u.reviews.DeleteOwned(ctx, reviewID, principal.ID)
}

// ToggleLike flips the principal's like on a review and returns the new
// state. It is deliberately a toggle, not an idempotent set: two rapid
// calls flip state twice.
func (u *reviewUsecase) ToggleLike(ctx context.Context, principal *identity.Principal, reviewID uint) (bool, error) {
	if principal == nil {
		return false, ErrUnauthorized
	}

	_, err := u.reviews.FindLike(ctx, principal.ID, reviewID)
	if err == nil {
		if err := u.reviews.DeleteLike(ctx, principal.ID, reviewID); err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, ErrLikeNotFound) {
		return false, err
	}

	// No like yet. The review must still exist, otherwise a stale id would
	// persist an orphan like row.
	if _, err := u.reviews.FindByID(ctx, reviewID); err != nil {
		return false, err
	}

	like := &entity.ReviewLike{UserID: principal.ID, ReviewID: reviewID}
	if err := u.reviews.CreateLike(ctx, like); err != nil {
		return false, err
	}
	return true, nil
}

// ListByMajor returns a major's reviews with like counts, newest first.
func (u *reviewUsecase) ListByMajor(ctx context.Context, slug string) ([]entity.ReviewSummary, error) {
	major, err := u.majors.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return u.reviews.ListByMajor(ctx, major.ID)
}
