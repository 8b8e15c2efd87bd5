package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/homez-ar/api/internal/database"
	"github.com/homez-ar/api/internal/models"
	"github.com/jackc/pgx/v5"
)

// AdminRepository defines data access for back-office users.
type AdminRepository interface {
	// FindByEmail returns nil, nil when no admin with that email exists.
	// Returns error only for actual database failures.
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type adminRepository struct {
	db *database.Database
}

// NewAdminRepository creates a new AdminRepository instance.
func NewAdminRepository(db *database.Database) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `
		SELECT id, email, name, password_hash, created_at
		FROM admins
		WHERE email = $1`

	var admin models.Admin
	err := r.db.Pool.QueryRow(ctx, query, email).Scan(
		&admin.ID, &admin.Email, &admin.Name, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}

	return &admin, nil
}
