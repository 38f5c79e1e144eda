// Package handler provides HTTP handlers for the verification feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ratemymajor_backend/internal/feature/verification/usecase"
)

// VerifyUsecase resolves verification tokens.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type VerifyUsecase interface {
	// Resolve consumes a token value and returns a user-facing success message.
	Resolve(ctx context.Context, token string) (string, error)
}

// resolveReq represents the request body for the /new-verification endpoint.
type resolveReq struct {
	Token string `json:"token" binding:"required"`
}

// VerificationHandler handles HTTP requests for token resolution.
type VerificationHandler struct {
	verify VerifyUsecase
}

// NewVerificationHandler creates a new instance of VerificationHandler.
func NewVerificationHandler(verify VerifyUsecase) *VerificationHandler {
	return &VerificationHandler{verify: verify}
}

// Resolve handles POST /new-verification.
func (h *VerificationHandler) Resolve(c *gin.Context) {
	var req resolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("verification bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token does not exist!"})
		return
	}

	msg, err := h.verify.Resolve(c.Request.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTokenNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Token does not exist!"})
		case errors.Is(err, usecase.ErrTokenExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Token has expired!"})
		case errors.Is(err, usecase.ErrInvalidCppEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid CPP email!"})
		case errors.Is(err, usecase.ErrEmailNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email does not exist!"})
		default:
			slog.Error("verification failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
		}
		return
	}

	slog.Info("verification resolved", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"success": msg})
}
