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

// CollegeRepository handles database operations for colleges
type CollegeRepository struct {
	db *pgxpool.Pool
}

// NewCollegeRepository creates a new college repository
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{db: db}
}

// Create inserts a college. Institution names are unique; the constraint
// replaces the racy look-up-then-insert the frontend used to rely on.
func (r *CollegeRepository) Create(ctx context.Context, c *models.College) error {
	query := `
		INSERT INTO colleges (id, name, code, address, departments, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	departments := c.Departments
	if departments == nil {
		departments = []models.Department{}
	}

	err := r.db.QueryRow(ctx, query,
		c.CollegeID, c.Name, c.Code, c.Address, departments, c.CreatedBy,
	).Scan(&c.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolationOn(err, "colleges_name_key") {
			return apperrors.ErrCollegeAlreadyExists
		}
		return fmt.Errorf("error creating college: %w", err)
	}
	return nil
}

// GetByID retrieves a college by identifier.
func (r *CollegeRepository) GetByID(ctx context.Context, id string) (*models.College, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

// GetByName retrieves a college by its unique institution name.
func (r *CollegeRepository) GetByName(ctx context.Context, name string) (*models.College, error) {
	return r.getOne(ctx, `WHERE name = $1`, name)
}

func (r *CollegeRepository) getOne(ctx context.Context, where string, arg interface{}) (*models.College, error) {
	query := `
		SELECT id, name, code, address, departments, created_by, created_at
		FROM colleges ` + where

	var c models.College
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&c.CollegeID, &c.Name, &c.Code, &c.Address, &c.Departments,
		&c.CreatedBy, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error retrieving college: %w", err)
	}
	return &c, nil
}

// ListAll returns every college.
func (r *CollegeRepository) ListAll(ctx context.Context) ([]*models.College, error) {
	query := `
		SELECT id, name, code, address, departments, created_by, created_at
		FROM colleges ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing colleges: %w", err)
	}
	defer rows.Close()

	var colleges []*models.College
	for rows.Next() {
		var c models.College
		if err := rows.Scan(&c.CollegeID, &c.Name, &c.Code, &c.Address,
			&c.Departments, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, err
		}
		colleges = append(colleges, &c)
	}
	return colleges, rows.Err()
}

// AddDepartment appends a department to a college's list.
func (r *CollegeRepository) AddDepartment(ctx context.Context, collegeID string, dept models.Department) (*models.College, error) {
	query := `
		UPDATE colleges
		SET departments = departments || $2::jsonb
		WHERE id = $1
		RETURNING id, name, code, address, departments, created_by, created_at`

	var c models.College
	err := r.db.QueryRow(ctx, query, collegeID, []models.Department{dept}).Scan(
		&c.CollegeID, &c.Name, &c.Code, &c.Address, &c.Departments,
		&c.CreatedBy, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error adding department: %w", err)
	}
	return &c, nil
}
