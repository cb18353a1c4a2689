package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nandan/studenthub/internal/app/models"
	"github.com/nandan/studenthub/internal/pkg/apperrors"
)

// GroupRepository handles database operations for student groups
type GroupRepository struct {
	db *pgxpool.Pool
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{db: db}
}

const groupColumns = `id, name, college, department, teacher, students, created_by, created_at `

func scanGroup(row pgx.Row) (*models.Group, error) {
	var g models.Group
	err := row.Scan(&g.GroupID, &g.Name, &g.College, &g.Department,
		&g.Teacher, &g.Students, &g.CreatedBy, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Create inserts a new group.
func (r *GroupRepository) Create(ctx context.Context, g *models.Group) error {
	query := `
		INSERT INTO groups (id, name, college, department, teacher, students, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	students := g.Students
	if students == nil {
		students = []string{}
	}

	err := r.db.QueryRow(ctx, query,
		g.GroupID, g.Name, g.College, g.Department, g.Teacher, students, g.CreatedBy,
	).Scan(&g.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating group: %w", err)
	}
	return nil
}

// GetByID retrieves a group by identifier.
func (r *GroupRepository) GetByID(ctx context.Context, id string) (*models.Group, error) {
	query := `SELECT ` + groupColumns + `FROM groups WHERE id = $1`

	g, err := scanGroup(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("error retrieving group: %w", err)
	}
	return g, nil
}

// ListByCreatedBy returns groups created by the given admin or teacher.
func (r *GroupRepository) ListByCreatedBy(ctx context.Context, createdBy string) ([]*models.Group, error) {
	query := `SELECT ` + groupColumns + `FROM groups WHERE created_by = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, createdBy)
}

// ListByTeacher returns groups assigned to the given teacher.
func (r *GroupRepository) ListByTeacher(ctx context.Context, teacherID string) ([]*models.Group, error) {
	query := `SELECT ` + groupColumns + `FROM groups WHERE teacher = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, teacherID)
}

// Update replaces the mutable fields of a group.
func (r *GroupRepository) Update(ctx context.Context, g *models.Group) error {
	query := `
		UPDATE groups
		SET name = $2, college = $3, department = $4, teacher = $5, students = $6
		WHERE id = $1`

	students := g.Students
	if students == nil {
		students = []string{}
	}

	tag, err := r.db.Exec(ctx, query,
		g.GroupID, g.Name, g.College, g.Department, g.Teacher, students)
	if err != nil {
		return fmt.Errorf("error updating group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrGroupNotFound
	}
	return nil
}

func (r *GroupRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.Group, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
