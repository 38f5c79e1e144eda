// Package handler provides HTTP handlers for the review feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	majorusecase "ratemymajor_backend/internal/feature/major/usecase"
	"ratemymajor_backend/internal/feature/review/domain/entity"
	"ratemymajor_backend/internal/feature/review/transport/http/dto"
	"ratemymajor_backend/internal/feature/review/usecase"
	"ratemymajor_backend/internal/shared/identity"
)

// ReviewUsecase defines the review mutation operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ReviewUsecase interface {
	// CreateReview creates the principal's review of the major identified by slug.
	CreateReview(ctx context.Context, principal *identity.Principal, in usecase.CreateReviewInput) (*entity.Review, error)
	// UpdateReview updates the rating fields and comment of a review owned by the principal.
	UpdateReview(ctx context.Context, principal *identity.Principal, in usecase.UpdateReviewInput) (*entity.Review, error)
	// DeleteReview deletes the principal's review.
	DeleteReview(ctx context.Context, principal *identity.Principal, reviewID uint) error
	// ToggleLike flips the principal's like on a review and returns the new state.
	ToggleLike(ctx context.Context, principal *identity.Principal, reviewID uint) (bool, error)
	// ListByMajor returns a major's reviews with like counts.
	ListByMajor(ctx context.Context, slug string) ([]entity.ReviewSummary, error)
}

// ReviewHandler handles HTTP requests for review mutations and listings.
type ReviewHandler struct {
	reviews ReviewUsecase
}

// NewReviewHandler creates a new instance of ReviewHandler.
func NewReviewHandler(reviews ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Create handles POST /reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	principal := identity.FromContext(c)

	var req dto.CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create review bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	review, err := h.reviews.CreateReview(c.Request.Context(), principal, usecase.CreateReviewInput{
		Slug:       req.Slug,
		ReviewText: req.ReviewText,
		Ratings:    ratingsFromReq(req.Ratings),
	})
	if err != nil {
		h.respondError(c, "create review", err, "Unauthorized")
		return
	}

	slog.Info("review created", "review_id", review.ID, "user_id", review.UserID, "major_id", review.MajorID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "review": dto.ReviewResponseFromEntity(review)})
}

// Update handles PUT /reviews/:id.
func (h *ReviewHandler) Update(c *gin.Context) {
	principal := identity.FromContext(c)

	reviewID, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update review bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	review, err := h.reviews.UpdateReview(c.Request.Context(), principal, usecase.UpdateReviewInput{
		ReviewID:   reviewID,
		ReviewText: req.ReviewText,
		Ratings:    ratingsFromReq(req.Ratings),
	})
	if err != nil {
		h.respondError(c, "update review", err, "Unauthorized")
		return
	}

	slog.Info("review updated", "review_id", review.ID, "user_id", review.UserID)
	c.JSON(http.StatusOK, gin.H{"success": true, "review": dto.ReviewResponseFromEntity(review)})
}

// Delete handles DELETE /reviews/:id.
func (h *ReviewHandler) Delete(c *gin.Context) {
	principal := identity.FromContext(c)

	reviewID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.reviews.DeleteReview(c.Request.Context(), principal, reviewID); err != nil {
		h.respondError(c, "delete review", err, "Unauthorized!")
		return
	}

	slog.Info("review deleted", "review_id", reviewID)
	c.JSON(http.StatusOK, gin.H{"success": "Review deleted successfully!"})
}

// ToggleLike handles POST /reviews/:id/like.
// The result is self-describing so optimistic UIs can reconcile without a
// follow-up read.
func (h *ReviewHandler) ToggleLike(c *gin.Context) {
	principal := identity.FromContext(c)

	reviewID, ok := parseID(c)
	if !ok {
		return
	}

	liked, err := h.reviews.ToggleLike(c.Request.Context(), principal, reviewID)
	if err != nil {
		h.respondError(c, "toggle like", err, "Unauthorized")
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// ListByMajor handles GET /majors/:slug/reviews.
func (h *ReviewHandler) ListByMajor(c *gin.Context) {
	summaries, err := h.reviews.ListByMajor(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, "list reviews", err, "Unauthorized")
		return
	}

	out := make([]dto.ReviewSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = dto.ReviewSummaryResponseFromEntity(s)
	}
	c.JSON(http.StatusOK, gin.H{"reviews": out})
}

// parseID reads the :id path parameter, responding 400 on garbage.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review id"})
		return 0, false
	}
	return uint(id), true
}

// ratingsFromReq converts the request ratings to the usecase input shape.
func ratingsFromReq(r dto.RatingsReq) usecase.Ratings {
	return usecase.Ratings{
		Major:           r.Major,
		CareerReadiness: r.CareerReadiness,
		Difficulty:      r.Difficulty,
		Satisfaction:    r.Satisfaction,
	}
}

// respondError maps usecase errors to HTTP responses with their
// user-facing messages. unauthorizedMsg varies per operation ("Unauthorized"
// vs "Unauthorized!") to keep the visible strings stable.
func (h *ReviewHandler) respondError(c *gin.Context, op string, err error, unauthorizedMsg string) {
	var vErr *usecase.ValidationError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": unauthorizedMsg})
	case errors.Is(err, majorusecase.ErrMajorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Major not found"})
	case errors.Is(err, usecase.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
	case errors.Is(err, usecase.ErrAlreadyReviewed):
		c.JSON(http.StatusConflict, gin.H{"error": "You have already reviewed this major!"})
	case errors.Is(err, usecase.ErrLikeConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Please try again!"})
	default:
		slog.Error(op+" failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
	}
}
