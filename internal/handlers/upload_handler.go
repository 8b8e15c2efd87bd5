package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/homez-ar/api/internal/errors"
	"github.com/homez-ar/api/internal/middleware"
	"github.com/homez-ar/api/internal/services"
)

// UploadHandler handles admin asset uploads (logo, favicon).
type UploadHandler struct {
	service services.UploadService
}

// NewUploadHandler creates a new UploadHandler instance.
func NewUploadHandler(service services.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload handles POST /api/v1/admin/uploads/:kind.
// The file arrives as multipart form field "file"; kind selects the content
// type whitelist.
func (h *UploadHandler) Upload(c *gin.Context) {
	log := middleware.GetLogger(c)
	kind := c.Param("kind")

	file, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "Missing file upload", nil)
		return
	}

	url, err := h.service.Save(c, kind, file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidUploadKind),
			errors.Is(err, services.ErrInvalidFileType),
			errors.Is(err, services.ErrFileTooLarge):
			apierrors.BadRequest(c, err.Error(), nil)
		default:
			apierrors.InternalServerError(c, "Failed to store upload", err)
		}
		return
	}

	if log != nil {
		log.Info("Asset uploaded", map[string]interface{}{
			"kind": kind,
			"url":  url,
		})
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
