package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/homez-ar/api/internal/logger"
	"github.com/homez-ar/api/internal/models"
	"github.com/homez-ar/api/internal/repository"
)

// Service-level errors surfaced to handlers as 400s.
var (
	ErrInvalidTypology   = errors.New("invalid property typology")
	ErrInvalidOperation  = errors.New("invalid operation")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
)

// Closed whitelists for appraisal requests. Values outside these sets are
// rejected before any persistence attempt.
var (
	appraisalTypologies = map[string]bool{
		"casa":         true,
		"departamento": true,
		"ph":           true,
		"duplex":       true,
		"oficina":      true,
		"local":        true,
		"terreno":      true,
		"quinta":       true,
		"otros":        true,
	}

	appraisalOperations = map[string]bool{
		"venta":             true,
		"alquiler":          true,
		"alquiler-temporal": true,
	}

	leadStatuses = map[string]bool{
		models.LeadStatusNew:      true,
		models.LeadStatusRead:     true,
		models.LeadStatusArchived: true,
	}
)

// ContactPage is one page of contact leads with pagination metadata.
type ContactPage struct {
	Contacts   []models.Contact `json:"contacts"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
}

// LeadService handles contact messages and appraisal requests. Field-level
// shape validation (required, email format) happens at the handler binding;
// this layer enforces the categorical whitelists and normalizes input, and
// only then persists.
type LeadService interface {
	CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	ListContacts(ctx context.Context, page, limit int, status string) (*ContactPage, error)
	UpdateContactStatus(ctx context.Context, id, status string) error

	CreateAppraisal(ctx context.Context, appraisal *models.Appraisal) (*models.Appraisal, error)
	ListAppraisals(ctx context.Context) ([]models.Appraisal, error)
}

type leadService struct {
	repo repository.LeadRepository
	log  *logger.Logger
}

// NewLeadService creates a new LeadService instance.
func NewLeadService(repo repository.LeadRepository, log *logger.Logger) LeadService {
	return &leadService{repo: repo, log: log}
}

func (s *leadService) CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Email = strings.ToLower(strings.TrimSpace(contact.Email))
	contact.Message = strings.TrimSpace(contact.Message)

	saved, err := s.repo.CreateContact(ctx, contact)
	if err != nil {
		s.log.Error("Failed to save contact", err, map[string]interface{}{
			"email": contact.Email,
		})
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}

	s.log.Info("Contact lead captured", map[string]interface{}{
		"contact_id": saved.ID,
		"email":      saved.Email,
	})
	return saved, nil
}

func (s *leadService) ListContacts(ctx context.Context, page, limit int, status string) (*ContactPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	if status != "" && !leadStatuses[status] {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLeadStatus, status)
	}

	contacts, total, err := s.repo.ListContacts(ctx, page, limit, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return &ContactPage{
		Contacts:   contacts,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (s *leadService) UpdateContactStatus(ctx context.Context, id, status string) error {
	if !leadStatuses[status] {
		return fmt.Errorf("%w: %s", ErrInvalidLeadStatus, status)
	}
	return s.repo.UpdateContactStatus(ctx, id, status)
}

func (s *leadService) CreateAppraisal(ctx context.Context, appraisal *models.Appraisal) (*models.Appraisal, error) {
	appraisal.Name = strings.TrimSpace(appraisal.Name)
	appraisal.Phone = strings.TrimSpace(appraisal.Phone)
	appraisal.Email = strings.ToLower(strings.TrimSpace(appraisal.Email))
	appraisal.Comments = strings.TrimSpace(appraisal.Comments)
	appraisal.Address = strings.TrimSpace(appraisal.Address)
	appraisal.Area = strings.TrimSpace(appraisal.Area)

	// Whitelists are enforced before any persistence attempt.
	if !appraisalTypologies[appraisal.Typology] {
		s.log.Warn("Rejected appraisal with unknown typology", map[string]interface{}{
			"typology": appraisal.Typology,
		})
		return nil, fmt.Errorf("%w: %s", ErrInvalidTypology, appraisal.Typology)
	}
	if !appraisalOperations[appraisal.Operation] {
		s.log.Warn("Rejected appraisal with unknown operation", map[string]interface{}{
			"operation": appraisal.Operation,
		})
		return nil, fmt.Errorf("%w: %s", ErrInvalidOperation, appraisal.Operation)
	}

	saved, err := s.repo.CreateAppraisal(ctx, appraisal)
	if err != nil {
		s.log.Error("Failed to save appraisal", err, map[string]interface{}{
			"email": appraisal.Email,
		})
		return nil, fmt.Errorf("failed to save appraisal: %w", err)
	}

	s.log.Info("Appraisal lead captured", map[string]interface{}{
		"appraisal_id": saved.ID,
		"operation":    saved.Operation,
	})
	return saved, nil
}

func (s *leadService) ListAppraisals(ctx context.Context) ([]models.Appraisal, error) {
	appraisals, err := s.repo.ListAppraisals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appraisals: %w", err)
	}
	return appraisals, nil
}
