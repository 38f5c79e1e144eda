// Package db opens the application's relational database connection.
package db

import (
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "ratemymajor_backend/internal/feature/auth/domain/entity"
	majorentity "ratemymajor_backend/internal/feature/major/domain/entity"
	reviewentity "ratemymajor_backend/internal/feature/review/domain/entity"
	tokenentity "ratemymajor_backend/internal/feature/verification/domain/entity"
)

// OpenDB connects to PostgreSQL using DATABASE_URL, retrying for up to a
// minute while the database comes up.
//
// TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey; the adapters depend on that to map conflicts. The
// unique indexes created here are the real enforcement of the one-review-
// per-user-per-major and one-like-per-user-per-review invariants.
func OpenDB() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&majorentity.Major{},
			&reviewentity.Review{},
			&reviewentity.ReviewLike{},
			&tokenentity.VerificationToken{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
