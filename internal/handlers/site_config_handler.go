package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/homez-ar/api/internal/errors"
	"github.com/homez-ar/api/internal/middleware"
	"github.com/homez-ar/api/internal/models"
	"github.com/homez-ar/api/internal/services"
)

// SiteConfigHandler handles site configuration HTTP requests. Get is public
// (the frontend needs branding before anyone logs in); Update sits behind
// the admin auth middleware.
type SiteConfigHandler struct {
	service services.SiteConfigService
}

// NewSiteConfigHandler creates a new SiteConfigHandler instance.
func NewSiteConfigHandler(service services.SiteConfigService) *SiteConfigHandler {
	return &SiteConfigHandler{service: service}
}

// Get handles GET /api/v1/site-config.
func (h *SiteConfigHandler) Get(c *gin.Context) {
	cfg, err := h.service.Get(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to load site configuration", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

// Update handles PUT /api/v1/admin/site-config.
func (h *SiteConfigHandler) Update(c *gin.Context) {
	log := middleware.GetLogger(c)

	var cfg models.SiteConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		apierrors.BadRequest(c, "Invalid site configuration payload", nil)
		return
	}

	saved, err := h.service.Update(c.Request.Context(), &cfg)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to save site configuration", err)
		return
	}

	if log != nil {
		if admin, ok := middleware.GetAdmin(c); ok {
			log.Info("Site configuration saved", map[string]interface{}{
				"admin_id": admin.ID,
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{"config": saved})
}
