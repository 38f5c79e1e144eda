package usecase

import (
	"context"

	"ratemymajor_backend/internal/feature/major/domain/entity"
)

// MajorRepository abstracts the persistence layer for major entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MajorRepository interface {
	// FindBySlug retrieves a major by its unique slug.
	// It returns ErrMajorNotFound when no major matches.
	FindBySlug(ctx context.Context, slug string) (*entity.Major, error)

	// List retrieves all majors ordered by name.
	List(ctx context.Context) ([]entity.Major, error)
}

// majorUsecase implements the read side of the major catalog.
type majorUsecase struct {
	majors MajorRepository
}

// NewMajorUsecase creates a new instance of majorUsecase.
func NewMajorUsecase(majors MajorRepository) *majorUsecase {
	return &majorUsecase{majors: majors}
}

// List returns every major in the catalog.
func (u *majorUsecase) List(ctx context.Context) ([]entity.Major, error) {
	return u.majors.List(ctx)
}

// GetBySlug returns the major identified by slug.
func (u *majorUsecase) GetBySlug(ctx context.Context, slug string) (*entity.Major, error) {
	return u.majors.FindBySlug(ctx, slug)
}
