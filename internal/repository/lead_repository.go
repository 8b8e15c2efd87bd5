package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/homez-ar/api/internal/database"
	"github.com/homez-ar/api/internal/models"
	"github.com/jackc/pgx/v5"
)

// ErrLeadNotFound is returned when an update targets a missing lead.
var ErrLeadNotFound = errors.New("lead not found")

// LeadRepository defines data access for contact messages and appraisal
// requests. Records are validated before they reach this layer.
type LeadRepository interface {
	CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error)

	// ListContacts returns one page of contacts ordered newest first,
	// optionally filtered by status, together with the total count.
	ListContacts(ctx context.Context, page, limit int, status string) ([]models.Contact, int, error)

	// UpdateContactStatus sets the triage status of a contact.
	// Returns ErrLeadNotFound when no such contact exists.
	UpdateContactStatus(ctx context.Context, id, status string) error

	CreateAppraisal(ctx context.Context, appraisal *models.Appraisal) (*models.Appraisal, error)
	ListAppraisals(ctx context.Context) ([]models.Appraisal, error)
}

type leadRepository struct {
	db *database.Database
}

// NewLeadRepository creates a new LeadRepository instance.
func NewLeadRepository(db *database.Database) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	query := `
		INSERT INTO contacts (id, name, email, phone, message, property_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, name, email, phone, message, property_id, status, created_at`

	row := r.db.Pool.QueryRow(ctx, query,
		uuid.New().String(),
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Message,
		contact.PropertyID,
		models.LeadStatusNew,
	)

	saved, err := scanContact(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert contact: %w", err)
	}
	return saved, nil
}

func (r *leadRepository) ListContacts(ctx context.Context, page, limit int, status string) ([]models.Contact, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	var total int
	countQuery := `SELECT COUNT(*) FROM contacts WHERE ($1 = '' OR status = $1)`
	if err := r.db.Pool.QueryRow(ctx, countQuery, status).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	query := `
		SELECT id, name, email, phone, message, property_id, status, created_at
		FROM contacts
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Pool.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0, limit)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, *contact)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	return contacts, total, nil
}

func (r *leadRepository) UpdateContactStatus(ctx context.Context, id, status string) error {
	tag, err := r.db.Pool.Exec(ctx,
		`UPDATE contacts SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update contact status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeadNotFound
	}
	return nil
}

func (r *leadRepository) CreateAppraisal(ctx context.Context, appraisal *models.Appraisal) (*models.Appraisal, error) {
	query := `
		INSERT INTO appraisals (
			id, name, phone, email, comments, address, area,
			typology, operation, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING id, name, phone, email, comments, address, area,
			typology, operation, status, created_at`

	row := r.db.Pool.QueryRow(ctx, query,
		uuid.New().String(),
		appraisal.Name,
		appraisal.Phone,
		appraisal.Email,
		appraisal.Comments,
		appraisal.Address,
		appraisal.Area,
		appraisal.Typology,
		appraisal.Operation,
		models.LeadStatusNew,
	)

	saved, err := scanAppraisal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert appraisal: %w", err)
	}
	return saved, nil
}

func (r *leadRepository) ListAppraisals(ctx context.Context) ([]models.Appraisal, error) {
	query := `
		SELECT id, name, phone, email, comments, address, area,
			typology, operation, status, created_at
		FROM appraisals
		ORDER BY created_at DESC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query appraisals: %w", err)
	}
	defer rows.Close()

	var appraisals []models.Appraisal
	for rows.Next() {
		appraisal, err := scanAppraisal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appraisal: %w", err)
		}
		appraisals = append(appraisals, *appraisal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate appraisals: %w", err)
	}

	return appraisals, nil
}

func scanContact(row pgx.Row) (*models.Contact, error) {
	var c models.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message,
		&c.PropertyID, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanAppraisal(row pgx.Row) (*models.Appraisal, error) {
	var a models.Appraisal
	err := row.Scan(&a.ID, &a.Name, &a.Phone, &a.Email, &a.Comments,
		&a.Address, &a.Area, &a.Typology, &a.Operation, &a.Status, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
