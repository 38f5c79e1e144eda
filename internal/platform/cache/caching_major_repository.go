// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"ratemymajor_backend/internal/feature/major/domain/entity"
	"ratemymajor_backend/internal/feature/major/usecase"
)

// CachingMajorRepository decorates a MajorRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. The major catalog changes only
// through out-of-band imports, so a plain TTL is enough.
type CachingMajorRepository struct {
	inner     usecase.MajorRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check to ensure CachingMajorRepository implements MajorRepository.
var _ usecase.MajorRepository = (*CachingMajorRepository)(nil)

// NewCachingMajorRepository decorates a MajorRepository with Redis caching.
// If ttl is 0, it defaults to 10 minutes. If namespace is empty, it uses "majors".
func NewCachingMajorRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MajorRepository, namespace string) *CachingMajorRepository {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if namespace == "" {
		namespace = "majors"
	}
	return &CachingMajorRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindBySlug retrieves a major, checking cache first then falling back to
// the database. Only successful lookups are cached; ErrMajorNotFound always
// comes from the underlying repository.
func (c *CachingMajorRepository) FindBySlug(ctx context.Context, slug string) (*entity.Major, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindBySlug(ctx, slug)
	}

	key := c.slugKey(slug)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Major
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// List retrieves all majors, checking cache first then falling back to the database.
func (c *CachingMajorRepository) List(ctx context.Context) ([]entity.Major, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.listKey()

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Major
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// slugKey generates the cache key for a single-major lookup.
func (c *CachingMajorRepository) slugKey(slug string) string {
	return fmt.Sprintf("%s:slug:%s", c.namespace, safe(slug))
}

// listKey generates the cache key for the full catalog.
func (c *CachingMajorRepository) listKey() string {
	return fmt.Sprintf("%s:all", c.namespace)
}

// safe normalizes a key segment so it cannot collide with the key layout.
func safe(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, ":", "_")
}
