package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/homez-ar/api/internal/errors"
	"github.com/homez-ar/api/internal/middleware"
	"github.com/homez-ar/api/internal/models"
	"github.com/homez-ar/api/internal/repository"
	"github.com/homez-ar/api/internal/services"
)

// LeadHandler handles contact and appraisal lead HTTP requests. The create
// endpoints are public form targets; the list and status endpoints sit
// behind the admin auth middleware.
type LeadHandler struct {
	service services.LeadService
}

// NewLeadHandler creates a new LeadHandler instance.
func NewLeadHandler(service services.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

// ContactRequest is the public contact form payload.
type ContactRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      *string `json:"phone"`
	Message    string  `json:"message" binding:"required"`
	PropertyID *string `json:"propertyId"`
}

// AppraisalRequest is the public appraisal form payload. Typology and
// operation are checked against closed whitelists in the service layer.
type AppraisalRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Comments  string `json:"comments"`
	Address   string `json:"address" binding:"required"`
	Area      string `json:"neighborhood" binding:"required"`
	Typology  string `json:"typology" binding:"required"`
	Operation string `json:"operation" binding:"required"`
}

// StatusRequest updates a lead's workflow status.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateContact handles POST /api/v1/contacts.
func (h *LeadHandler) CreateContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid contact payload", nil)
		return
	}

	contact, err := h.service.CreateContact(c.Request.Context(), &models.Contact{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		PropertyID: req.PropertyID,
	})
	if err != nil {
		apierrors.InternalServerError(c, "Failed to save contact message", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"contact": contact})
}

// ListContacts handles GET /api/v1/admin/contacts.
func (h *LeadHandler) ListContacts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	status := c.Query("status")

	result, err := h.service.ListContacts(c.Request.Context(), page, limit, status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidLeadStatus) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to list contacts", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateContactStatus handles PATCH /api/v1/admin/contacts/:id.
func (h *LeadHandler) UpdateContactStatus(c *gin.Context) {
	log := middleware.GetLogger(c)
	id := c.Param("id")

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid status payload", nil)
		return
	}

	if err := h.service.UpdateContactStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, services.ErrInvalidLeadStatus) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		if errors.Is(err, repository.ErrLeadNotFound) {
			apierrors.NotFound(c, "Contact not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to update contact", err)
		return
	}

	if log != nil {
		log.Info("Contact status updated", map[string]interface{}{
			"contact_id": id,
			"status":     req.Status,
		})
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}

// CreateAppraisal handles POST /api/v1/appraisals.
func (h *LeadHandler) CreateAppraisal(c *gin.Context) {
	var req AppraisalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid appraisal payload", nil)
		return
	}

	appraisal, err := h.service.CreateAppraisal(c.Request.Context(), &models.Appraisal{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Comments:  req.Comments,
		Address:   req.Address,
		Area:      req.Area,
		Typology:  req.Typology,
		Operation: req.Operation,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidTypology) || errors.Is(err, services.ErrInvalidOperation) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to save appraisal request", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appraisal": appraisal})
}

// ListAppraisals handles GET /api/v1/admin/appraisals.
func (h *LeadHandler) ListAppraisals(c *gin.Context) {
	appraisals, err := h.service.ListAppraisals(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list appraisals", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appraisals": appraisals,
		"count":      len(appraisals),
	})
}
