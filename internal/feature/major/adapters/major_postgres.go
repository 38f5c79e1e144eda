// Package adapters provides repository implementations for the major feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ratemymajor_backend/internal/feature/major/domain/entity"
	"ratemymajor_backend/internal/feature/major/usecase"
	reviewusecase "ratemymajor_backend/internal/feature/review/usecase"
)

// majorPostgres is a PostgreSQL implementation of the major repository interfaces.
type majorPostgres struct {
	db *gorm.DB
}

// Compile-time checks against every consumer-defined interface this adapter serves.
var (
	_ usecase.MajorRepository   = (*majorPostgres)(nil)
	_ reviewusecase.MajorFinder = (*majorPostgres)(nil)
)

// NewMajorPostgres creates a new instance of majorPostgres.
func NewMajorPostgres(db *gorm.DB) *majorPostgres {
	return &majorPostgres{db: db}
}

// FindBySlug retrieves a major by its unique slug.
func (r *majorPostgres) FindBySlug(ctx context.Context, slug string) (*entity.Major, error) {
	var major entity.Major
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&major).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrMajorNotFound
		}
		return nil, err
	}
	return &major, nil
}

// List retrieves all majors ordered by name.
func (r *majorPostgres) List(ctx context.Context) ([]entity.Major, error) {
	var majors []entity.Major
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&majors).Error; err != nil {
		return nil, err
	}
	return majors, nil
}
