package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/homez-ar/api/internal/errors"
	"github.com/homez-ar/api/internal/middleware"
	"github.com/homez-ar/api/internal/services"
)

// AuthHandler handles admin session HTTP requests.
type AuthHandler struct {
	service services.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(service services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login.
// On success the session token is set as an httpOnly cookie so the browser
// carries it without script access; it is also returned in the body for
// non-browser clients.
func (h *AuthHandler) Login(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid login payload", nil)
		return
	}

	admin, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.Unauthorized(c, "Invalid email or password")
			return
		}
		apierrors.InternalServerError(c, "Failed to log in", err)
		return
	}

	maxAge := int(h.service.TokenTTL().Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminCookieName, token, maxAge, "/", "", false, true)

	if log != nil {
		log.Info("Admin logged in", map[string]interface{}{
			"admin_id": admin.ID,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"admin": admin,
		"token": token,
	})
}

// Logout handles POST /api/v1/auth/logout by expiring the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me handles GET /api/v1/admin/me, returning the identity behind the
// current session. Useful for the admin panel to restore state on reload.
func (h *AuthHandler) Me(c *gin.Context) {
	admin, ok := middleware.GetAdmin(c)
	if !ok {
		apierrors.Unauthorized(c, "Authentication required")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}
