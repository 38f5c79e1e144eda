package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"ratemymajor_backend/internal/app/di"
	"ratemymajor_backend/internal/app/router"
	authadapters "ratemymajor_backend/internal/feature/auth/adapters"
	authhandler "ratemymajor_backend/internal/feature/auth/transport/handler"
	authusecase "ratemymajor_backend/internal/feature/auth/usecase"
	majorhandler "ratemymajor_backend/internal/feature/major/transport/handler"
	majorusecase "ratemymajor_backend/internal/feature/major/usecase"
	reviewadapters "ratemymajor_backend/internal/feature/review/adapters"
	reviewhandler "ratemymajor_backend/internal/feature/review/transport/handler"
	reviewusecase "ratemymajor_backend/internal/feature/review/usecase"
	verificationadapters "ratemymajor_backend/internal/feature/verification/adapters"
	verificationhandler "ratemymajor_backend/internal/feature/verification/transport/handler"
	verificationusecase "ratemymajor_backend/internal/feature/verification/usecase"
	infradb "ratemymajor_backend/internal/platform/db"
	"ratemymajor_backend/internal/platform/externalapi/resend"
	platformhttp "ratemymajor_backend/internal/platform/http"
	jwtmw "ratemymajor_backend/internal/platform/jwt"
	infraredis "ratemymajor_backend/internal/platform/redis"
	"ratemymajor_backend/internal/shared/ratelimiter"
)

// accessTokenTTL is how long an issued JWT stays valid.
const accessTokenTTL = 24 * time.Hour

// majorCacheTTL is how long cached major catalog reads stay fresh.
const majorCacheTTL = 10 * time.Minute

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// The review and settings schemas are strict: unknown fields are rejected.
	gin.EnableJsonDecoderDisallowUnknownFields()

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Outbound mail, paced to stay inside the Resend API rate limit
	mailCfg := resend.LoadConfig()
	mailLimiter := ratelimiter.NewRateLimiter(2, time.Second)
	mailer := resend.NewClient(mailCfg, platformhttp.NewHTTPClient(mailCfg.Timeout), mailLimiter)

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	majorRepo := di.NewMajorRepository(rdb, db, majorCacheTTL)
	reviewRepo := reviewadapters.NewReviewPostgres(db)
	tokenRepo := verificationadapters.NewTokenPostgres(db)

	// Usecase
	tokenUC := verificationusecase.NewTokenUsecase(tokenRepo, mailer)
	verifyUC := verificationusecase.NewVerifyUsecase(tokenRepo, userRepo)
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), accessTokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen, tokenUC)
	settingsUC := authusecase.NewSettingsUsecase(userRepo, tokenUC)
	majorUC := majorusecase.NewMajorUsecase(majorRepo)
	reviewUC := reviewusecase.NewReviewUsecase(reviewRepo, majorRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, settingsUC)
	majorH := majorhandler.NewMajorHandler(majorUC)
	reviewH := reviewhandler.NewReviewHandler(reviewUC)
	verifH := verificationhandler.NewVerificationHandler(verifyUC)

	// Router. The web frontend runs on its own origin, so CORS goes in with
	// the routes.
	r := router.NewRouter(authH, majorH, reviewH, verifH, cors.Default())

	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
