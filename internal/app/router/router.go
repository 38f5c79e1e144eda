package router

import (
	"github.com/gin-gonic/gin"

	authhandler "ratemymajor_backend/internal/feature/auth/transport/handler"
	majorhandler "ratemymajor_backend/internal/feature/major/transport/handler"
	reviewhandler "ratemymajor_backend/internal/feature/review/transport/handler"
	verificationhandler "ratemymajor_backend/internal/feature/verification/transport/handler"
	"ratemymajor_backend/internal/platform/http/handler"
	jwtmw "ratemymajor_backend/internal/platform/jwt"
)

// NewRouter wires every HTTP route. Reads and the verification resolver are
// public; review mutations and account settings require a JWT.
func NewRouter(auth *authhandler.AuthHandler, majors *majorhandler.MajorHandler,
	reviews *reviewhandler.ReviewHandler, verification *verificationhandler.VerificationHandler,
	middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	// Global middleware must be attached before any route: gin snapshots a
	// route's handler chain at registration time.
	r.Use(middleware...)

	// Liveness check
	r.GET("/healthz", handler.Health)

	// Account creation and login
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	// Token resolution is reached from an email link, before any session exists
	r.POST("/new-verification", verification.Resolve)

	// Public catalog reads
	r.GET("/majors", majors.List)
	r.GET("/majors/:slug", majors.Get)
	r.GET("/majors/:slug/reviews", reviews.ListByMajor)

	// Authenticated routes
	authed := r.Group("/")
	authed.Use(jwtmw.AuthRequired())
	{
		authed.POST("/reviews", reviews.Create)
		authed.PUT("/reviews/:id", reviews.Update)
		authed.DELETE("/reviews/:id", reviews.Delete)
		authed.POST("/reviews/:id/like", reviews.ToggleLike)
		authed.PATCH("/settings", auth.Settings)
		authed.DELETE("/account", auth.DeleteAccount)
	}

	return r
}
