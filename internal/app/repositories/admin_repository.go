package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nandan/studenthub/internal/app/models"
	"github.com/nandan/studenthub/internal/pkg/apperrors"
	"github.com/nandan/studenthub/internal/pkg/dberrors"
)

// AdminRepository handles database operations for admins
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create inserts a new admin.
func (r *AdminRepository) Create(ctx context.Context, a *models.Admin) error {
	query := `
		INSERT INTO admins (admin_id, name, email, password, institution, department, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		a.AdminID, a.Name, a.Email, a.Password, a.Institution, a.Department, a.Role,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolationOn(err, "admins_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating admin: %w", err)
	}
	return nil
}

// GetByEmail retrieves an admin by email.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `
		SELECT id, admin_id, name, email, password, institution, department, role, created_at
		FROM admins WHERE email = $1`

	var a models.Admin
	err := r.db.QueryRow(ctx, query, email).Scan(
		&a.ID, &a.AdminID, &a.Name, &a.Email, &a.Password,
		&a.Institution, &a.Department, &a.Role, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}
	return &a, nil
}
