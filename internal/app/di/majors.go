package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	majoradapters "ratemymajor_backend/internal/feature/major/adapters"
	"ratemymajor_backend/internal/feature/major/usecase"
	"ratemymajor_backend/internal/platform/cache"
)

// NewMajorRepository creates a MajorRepository implementation.
// If Redis is available, the database repository is wrapped in a
// read-through cache. Otherwise reads go straight to the database.
func NewMajorRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.MajorRepository {
	repo := majoradapters.NewMajorPostgres(db)
	if rdb != nil {
		return cache.NewCachingMajorRepository(rdb, ttl, repo, "majors")
	}
	return repo
}
