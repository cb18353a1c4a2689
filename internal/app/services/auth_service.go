package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/nandan/studenthub/internal/app/models"
	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/pkg/apperrors"
	"github.com/nandan/studenthub/internal/pkg/auth"
	"github.com/nandan/studenthub/internal/pkg/identifier"
	"github.com/nandan/studenthub/internal/pkg/logger"
)

// AuthService handles registration and login for all three account types
type AuthService struct {
	studentStore StudentStore
	teacherStore TeacherStore
	adminStore   AdminStore
	collegeStore CollegeStore
	jwtService   *auth.JWTService
}

// NewAuthService creates a new authentication service instance
func NewAuthService(studentStore StudentStore, teacherStore TeacherStore,
	adminStore AdminStore, collegeStore CollegeStore, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		studentStore: studentStore,
		teacherStore: teacherStore,
		adminStore:   adminStore,
		collegeStore: collegeStore,
		jwtService:   jwtService,
	}
}

// RegisterStudent creates a student account and assigns its public identifier.
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.StudentRegisterRequest) (*models.Student, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		StudentID:  identifier.New(req.College),
		Name:       req.Name,
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Password:   hashed,
		College:    req.College,
		Department: req.Department,
		Year:       req.Year,
		Semester:   req.Semester,
		RollNumber: req.RollNumber,
		Skills:     map[string]int{},
	}

	if err := s.studentStore.Create(ctx, student); err != nil {
		return nil, err
	}

	logger.Info().
		Str("studentId", student.StudentID).
		Str("college", student.College).
		Msg("Student registered")
	return student, nil
}

// LoginStudent checks credentials and issues an access token.
func (s *AuthService) LoginStudent(ctx context.Context, req *dto.LoginRequest) (*models.Student, string, error) {
	student, err := s.studentStore.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(student.StudentID, student.Name, string(models.RoleStudent))
	if err != nil {
		return nil, "", err
	}
	return student, token, nil
}

// RegisterTeacher creates a teacher account.
func (s *AuthService) RegisterTeacher(ctx context.Context, req *dto.TeacherRegisterRequest) (*models.Teacher, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		TeacherID:   identifier.New(req.College),
		Name:        req.Name,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Password:    hashed,
		PhoneNumber: req.PhoneNumber,
		Department:  req.Department,
		College:     req.College,
		Designation: req.Designation,
		Experience:  req.Experience,
	}

	if err := s.teacherStore.Create(ctx, teacher); err != nil {
		return nil, err
	}

	logger.Info().
		Str("teacherId", teacher.TeacherID).
		Str("college", teacher.College).
		Msg("Teacher registered")
	return teacher, nil
}

// LoginTeacher checks credentials and issues an access token.
func (s *AuthService) LoginTeacher(ctx context.Context, req *dto.LoginRequest) (*models.Teacher, string, error) {
	teacher, err := s.teacherStore.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrTeacherNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.CheckPassword(teacher.Password, req.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(teacher.TeacherID, teacher.Name, string(models.RoleTeacher))
	if err != nil {
		return nil, "", err
	}
	return teacher, token, nil
}

// RegisterAdmin creates an admin account and lazily registers the admin's
// institution as a college. College creation is best effort: an institution
// that already exists, or a transient failure, never blocks the registration.
func (s *AuthService) RegisterAdmin(ctx context.Context, req *dto.AdminRegisterRequest) (*models.Admin, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = string(models.RoleAdmin)
	}

	admin := &models.Admin{
		AdminID:     identifier.New(req.Institution),
		Name:        req.Name,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Password:    hashed,
		Institution: req.Institution,
		Department:  req.Department,
		Role:        role,
	}

	if err := s.adminStore.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.ensureCollege(ctx, admin)

	logger.Info().
		Str("adminId", admin.AdminID).
		Str("institution", admin.Institution).
		Msg("Admin registered")
	return admin, nil
}

// ensureCollege registers the admin's institution if it is not known yet.
func (s *AuthService) ensureCollege(ctx context.Context, admin *models.Admin) {
	college := &models.College{
		CollegeID: uuid.NewString(),
		Name:      admin.Institution,
		Code:      collegeCode(admin.Institution),
		Address:   "Not specified",
		Departments: []models.Department{
			{Name: admin.Department, Code: departmentCode(admin.Department)},
		},
		CreatedBy: admin.AdminID,
	}

	if err := s.collegeStore.Create(ctx, college); err != nil {
		if errors.Is(err, apperrors.ErrCollegeAlreadyExists) {
			return
		}
		logger.Warn().
			Err(err).
			Str("institution", admin.Institution).
			Msg("College auto-registration failed")
	}
}

// collegeCode derives a short code from the institution name: spaces
// stripped, first six characters, uppercased.
func collegeCode(institution string) string {
	compact := strings.ReplaceAll(institution, " ", "")
	if len(compact) > 6 {
		compact = compact[:6]
	}
	return strings.ToUpper(compact)
}

// departmentCode derives a short code from the department name.
func departmentCode(department string) string {
	compact := strings.ReplaceAll(department, " ", "")
	if len(compact) > 4 {
		compact = compact[:4]
	}
	return strings.ToUpper(compact)
}

// LoginAdmin checks credentials and issues an access token.
func (s *AuthService) LoginAdmin(ctx context.Context, req *dto.LoginRequest) (*models.Admin, string, error) {
	admin, err := s.adminStore.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.CheckPassword(admin.Password, req.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(admin.AdminID, admin.Name, string(models.RoleAdmin))
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}
