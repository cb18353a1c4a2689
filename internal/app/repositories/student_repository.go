package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nandan/studenthub/internal/app/models"
	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/pkg/apperrors"
	"github.com/nandan/studenthub/internal/pkg/dberrors"
)

// ErrVersionConflict signals that a conditional write lost the race; Mutate
// retries internally and only surfaces it when attempts are exhausted.
var ErrVersionConflict = errors.New("student document version conflict")

// mutateAttempts bounds optimistic-concurrency retries per mutation.
const mutateAttempts = 3

const studentColumns = `
	id, student_id, name, email, password, college, department, year, semester,
	roll_number, cgpa, profile, personal_certificates, academic_certificates,
	projects, semester_marks, skills, version, created_at, updated_at `

// StudentRepository handles database operations for student documents
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.StudentID, &s.Name, &s.Email, &s.Password, &s.College,
		&s.Department, &s.Year, &s.Semester, &s.RollNumber, &s.CGPA,
		&s.Profile, &s.PersonalCertificates, &s.AcademicCertificates,
		&s.Projects, &s.SemesterMarks, &s.Skills, &s.Version,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if s.Skills == nil {
		s.Skills = map[string]int{}
	}
	return &s, nil
}

// Create inserts a new student document.
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) error {
	query := `
		INSERT INTO students (
			student_id, name, email, password, college, department, year,
			semester, roll_number, cgpa, profile, personal_certificates,
			academic_certificates, projects, semester_marks, skills
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, version, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		s.StudentID, s.Name, s.Email, s.Password, s.College, s.Department,
		s.Year, s.Semester, s.RollNumber, s.CGPA,
		s.Profile, emptyIfNilCerts(s.PersonalCertificates), emptyIfNilAcademic(s.AcademicCertificates),
		emptyIfNilProjects(s.Projects), emptyIfNilMarks(s.SemesterMarks), emptyIfNilSkills(s.Skills),
	).Scan(&s.ID, &s.Version, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		switch {
		case dberrors.IsUniqueViolationOn(err, "students_email_key"):
			return apperrors.ErrEmailAlreadyExists
		case dberrors.IsUniqueViolationOn(err, "students_roll_number_key"):
			return apperrors.ErrRollNumberAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetByStudentID retrieves one student document by its public identifier.
func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	query := `SELECT` + studentColumns + `FROM students WHERE student_id = $1`
	s, err := scanStudent(r.db.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return s, nil
}

// GetByEmail retrieves one student document by email.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `SELECT` + studentColumns + `FROM students WHERE email = $1`
	s, err := scanStudent(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return s, nil
}

// Mutate runs fn against a fresh copy of the document and persists the
// result with a conditional write on the version column. On a lost race the
// whole cycle is retried with a reloaded document, so fn must be pure with
// respect to the student value it receives.
func (r *StudentRepository) Mutate(ctx context.Context, studentID string, fn func(*models.Student) error) (*models.Student, error) {
	for attempt := 0; attempt < mutateAttempts; attempt++ {
		s, err := r.GetByStudentID(ctx, studentID)
		if err != nil {
			return nil, err
		}

		if err := fn(s); err != nil {
			return nil, err
		}

		ok, err := r.save(ctx, s)
		if err != nil {
			return nil, err
		}
		if ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrVersionConflict)
}

// save writes the whole document back, guarded by the version it was read
// at. Returns false when another writer got there first.
func (r *StudentRepository) save(ctx context.Context, s *models.Student) (bool, error) {
	query := `
		UPDATE students SET
			name = $1, email = $2, password = $3, college = $4, department = $5,
			year = $6, semester = $7, roll_number = $8, cgpa = $9, profile = $10,
			personal_certificates = $11, academic_certificates = $12,
			projects = $13, semester_marks = $14, skills = $15,
			version = version + 1, updated_at = now()
		WHERE student_id = $16 AND version = $17`

	tag, err := r.db.Exec(ctx, query,
		s.Name, s.Email, s.Password, s.College, s.Department, s.Year,
		s.Semester, s.RollNumber, s.CGPA, s.Profile,
		emptyIfNilCerts(s.PersonalCertificates), emptyIfNilAcademic(s.AcademicCertificates),
		emptyIfNilProjects(s.Projects), emptyIfNilMarks(s.SemesterMarks), emptyIfNilSkills(s.Skills),
		s.StudentID, s.Version,
	)
	if err != nil {
		return false, fmt.Errorf("error saving student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}
	s.Version++
	return true, nil
}

// ListAll returns every student document, document-scan order.
func (r *StudentRepository) ListAll(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT` + studentColumns + `FROM students ORDER BY id`
	return r.queryStudents(ctx, query)
}

// ListWithPendingCertificates returns students holding at least one pending
// academic certificate.
func (r *StudentRepository) ListWithPendingCertificates(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT` + studentColumns + `
		FROM students
		WHERE academic_certificates @> '[{"status": "pending"}]'::jsonb
		ORDER BY id`
	return r.queryStudents(ctx, query)
}

// Search matches name, identifiers, email, college, or department,
// case-insensitive substring, capped at limit rows.
func (r *StudentRepository) Search(ctx context.Context, term string, limit int) ([]*models.Student, error) {
	pattern := "%" + term + "%"
	query := `SELECT` + studentColumns + `
		FROM students
		WHERE name ILIKE $1 OR student_id ILIKE $1 OR roll_number ILIKE $1
			OR email ILIKE $1 OR college ILIKE $1 OR department ILIKE $1
		ORDER BY id
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("error searching students: %w", err)
	}
	defer rows.Close()
	return collectStudents(rows)
}

// ListByStudentIDs returns the students matching the given identifiers.
// Unknown identifiers are silently skipped.
func (r *StudentRepository) ListByStudentIDs(ctx context.Context, studentIDs []string) ([]*models.Student, error) {
	if len(studentIDs) == 0 {
		return nil, nil
	}
	query := `SELECT` + studentColumns + `FROM students WHERE student_id = ANY($1) ORDER BY id`
	rows, err := r.db.Query(ctx, query, studentIDs)
	if err != nil {
		return nil, fmt.Errorf("error listing students by id: %w", err)
	}
	defer rows.Close()
	return collectStudents(rows)
}

// ListSummaries returns the teacher-dashboard projection of all students.
func (r *StudentRepository) ListSummaries(ctx context.Context) ([]dto.StudentSummary, error) {
	query := `
		SELECT student_id, name, email, college, department, year, semester, cgpa
		FROM students ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing student summaries: %w", err)
	}
	defer rows.Close()

	var summaries []dto.StudentSummary
	for rows.Next() {
		var s dto.StudentSummary
		if err := rows.Scan(&s.StudentID, &s.Name, &s.Email, &s.College,
			&s.Department, &s.Year, &s.Semester, &s.CGPA); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *StudentRepository) queryStudents(ctx context.Context, query string, args ...interface{}) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()
	return collectStudents(rows)
}

func collectStudents(rows pgx.Rows) ([]*models.Student, error) {
	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// The JSONB columns are NOT NULL; nil slices must serialize as empty
// containers, not SQL nulls.
func emptyIfNilCerts(v []models.PersonalCertificate) []models.PersonalCertificate {
	if v == nil {
		return []models.PersonalCertificate{}
	}
	return v
}

func emptyIfNilAcademic(v []models.AcademicCertificate) []models.AcademicCertificate {
	if v == nil {
		return []models.AcademicCertificate{}
	}
	return v
}

func emptyIfNilProjects(v []models.Project) []models.Project {
	if v == nil {
		return []models.Project{}
	}
	return v
}

func emptyIfNilMarks(v []models.SemesterMark) []models.SemesterMark {
	if v == nil {
		return []models.SemesterMark{}
	}
	return v
}

func emptyIfNilSkills(v map[string]int) map[string]int {
	if v == nil {
		return map[string]int{}
	}
	return v
}
