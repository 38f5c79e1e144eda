// Package handler provides HTTP handlers for the major feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ratemymajor_backend/internal/feature/major/domain/entity"
	"ratemymajor_backend/internal/feature/major/usecase"
)

// MajorUsecase defines the major catalog reads.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type MajorUsecase interface {
	// List returns every major in the catalog.
	List(ctx context.Context) ([]entity.Major, error)
	// GetBySlug returns the major identified by slug.
	GetBySlug(ctx context.Context, slug string) (*entity.Major, error)
}

// majorResponse is the JSON shape of a major.
type majorResponse struct {
	ID         uint   `json:"id"`
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	Department string `json:"department"`
	College    string `json:"college"`
}

// MajorHandler handles HTTP requests for the major catalog.
type MajorHandler struct {
	majors MajorUsecase
}

// NewMajorHandler creates a new instance of MajorHandler.
func NewMajorHandler(majors MajorUsecase) *MajorHandler {
	return &MajorHandler{majors: majors}
}

// List handles GET /majors.
func (h *MajorHandler) List(c *gin.Context) {
	majors, err := h.majors.List(c.Request.Context())
	if err != nil {
		slog.Error("list majors failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
		return
	}

	out := make([]majorResponse, len(majors))
	for i, m := range majors {
		out[i] = majorResponseFromEntity(&m)
	}
	c.JSON(http.StatusOK, gin.H{"majors": out})
}

// Get handles GET /majors/:slug.
func (h *MajorHandler) Get(c *gin.Context) {
	major, err := h.majors.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, usecase.ErrMajorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Major not found"})
			return
		}
		slog.Error("get major failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"major": majorResponseFromEntity(major)})
}

// majorResponseFromEntity converts a major entity to its response shape.
func majorResponseFromEntity(m *entity.Major) majorResponse {
	return majorResponse{
		ID:         m.ID,
		Slug:       m.Slug,
		Name:       m.Name,
		Department: m.Department,
		College:    m.College,
	}
}
