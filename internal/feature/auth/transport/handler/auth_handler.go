// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ratemymajor_backend/internal/feature/auth/transport/http/dto"
	"ratemymajor_backend/internal/feature/auth/usecase"
	"ratemymajor_backend/internal/shared/identity"
)

// AuthUsecase defines the signup and login operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user and sends the signup verification email.
	Signup(ctx context.Context, name, email, password string) error
	// Login authenticates a user, returning a JWT or a resend-confirmation message.
	Login(ctx context.Context, email, password string) (*usecase.LoginResult, error)
}

// SettingsUsecase defines the authenticated account mutations.
type SettingsUsecase interface {
	// UpdateSettings applies the requested account changes.
	UpdateSettings(ctx context.Context, principal *identity.Principal, in usecase.SettingsInput) (string, error)
	// DeleteAccount removes the principal's account.
	DeleteAccount(ctx context.Context, principal *identity.Principal) (string, error)
}

// AuthHandler handles HTTP requests for authentication and account settings.
type AuthHandler struct {
	auth     AuthUsecase
	settings SettingsUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase, settings SettingsUsecase) *AuthHandler {
	return &AuthHandler{auth: auth, settings: settings}
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fields!"})
		return
	}

	if err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		var vErr *usecase.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use!"})
		default:
			slog.Error("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
		}
		return
	}

	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"success": "Confirmation email sent!"})
}

// Login handles POST /login.
// An unverified account gets a fresh confirmation email and no token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fields!"})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailNotFound):
			slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email does not exist!"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials!"})
		default:
			slog.Error("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
		}
		return
	}

	if result.Token == "" {
		c.JSON(http.StatusOK, gin.H{"success": result.Message})
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"success": result.Message, "token": result.Token})
}

// Settings handles PATCH /settings.
func (h *AuthHandler) Settings(c *gin.Context) {
	principal := identity.FromContext(c)

	var req dto.SettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("settings bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fields!"})
		return
	}

	msg, err := h.settings.UpdateSettings(c.Request.Context(), principal, usecase.SettingsInput{
		Name:        req.Name,
		Email:       req.Email,
		CppEmail:    req.CppEmail,
		Password:    req.Password,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.respondSettingsError(c, "settings update", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": msg})
}

// DeleteAccount handles DELETE /account.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	principal := identity.FromContext(c)

	msg, err := h.settings.DeleteAccount(c.Request.Context(), principal)
	if err != nil {
		h.respondSettingsError(c, "account delete", err)
		return
	}

	slog.Info("account deleted", "user_id", principal.ID)
	c.JSON(http.StatusOK, gin.H{"success": msg})
}

// respondSettingsError maps settings usecase errors to HTTP responses.
func (h *AuthHandler) respondSettingsError(c *gin.Context, op string, err error) {
	var vErr *usecase.ValidationError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized!"})
	case errors.Is(err, usecase.ErrCppEmailInUse):
		c.JSON(http.StatusConflict, gin.H{"error": "This CPP email is already in use by another account!"})
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already in use!"})
	case errors.Is(err, usecase.ErrIncorrectPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Incorrect password!"})
	default:
		slog.Error(op+" failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
	}
}
