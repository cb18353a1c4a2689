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

// TeacherRepository handles database operations for teachers
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// Create inserts a new teacher.
func (r *TeacherRepository) Create(ctx context.Context, t *models.Teacher) error {
	query := `
		INSERT INTO teachers (teacher_id, name, email, password, phone_number,
			department, college, designation, experience)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		t.TeacherID, t.Name, t.Email, t.Password, t.PhoneNumber,
		t.Department, t.College, t.Designation, t.Experience,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolationOn(err, "teachers_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating teacher: %w", err)
	}
	return nil
}

// GetByEmail retrieves a teacher by email.
func (r *TeacherRepository) GetByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	query := `
		SELECT id, teacher_id, name, email, password, phone_number, department,
			college, designation, experience, created_at
		FROM teachers WHERE email = $1`

	var t models.Teacher
	err := r.db.QueryRow(ctx, query, email).Scan(
		&t.ID, &t.TeacherID, &t.Name, &t.Email, &t.Password, &t.PhoneNumber,
		&t.Department, &t.College, &t.Designation, &t.Experience, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return &t, nil
}

// ListAll returns every teacher.
func (r *TeacherRepository) ListAll(ctx context.Context) ([]*models.Teacher, error) {
	query := `
		SELECT id, teacher_id, name, email, password, phone_number, department,
			college, designation, experience, created_at
		FROM teachers ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing teachers: %w", err)
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		var t models.Teacher
		if err := rows.Scan(
			&t.ID, &t.TeacherID, &t.Name, &t.Email, &t.Password, &t.PhoneNumber,
			&t.Department, &t.College, &t.Designation, &t.Experience, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		teachers = append(teachers, &t)
	}
	return teachers, rows.Err()
}
