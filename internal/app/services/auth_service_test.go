package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/pkg/apperrors"
	"github.com/nandan/studenthub/internal/pkg/auth"
)

func newTestAuthService() (*AuthService, *fakeStudentStore, *fakeAdminStore, *fakeCollegeStore) {
	students := newFakeStudentStore()
	teachers := newFakeTeacherStore()
	admins := newFakeAdminStore()
	colleges := newFakeCollegeStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "studenthub.test",
	})
	return NewAuthService(students, teachers, admins, colleges, jwtService), students, admins, colleges
}

func studentRegisterRequest() *dto.StudentRegisterRequest {
	return &dto.StudentRegisterRequest{
		Name:            "Asha Verma",
		Email:           "  Asha.Verma@Example.COM ",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		College:         "Madras Institute of Technology",
		Department:      "Computer Science",
		Year:            2,
		Semester:        3,
		RollNumber:      "CS2024-017",
	}
}

func TestRegisterStudentAssignsIdentifierAndNormalizesEmail(t *testing.T) {
	svc, store, _, _ := newTestAuthService()

	student, err := svc.RegisterStudent(context.Background(), studentRegisterRequest())
	if err != nil {
		t.Fatalf("RegisterStudent() error = %v", err)
	}

	if !strings.HasPrefix(student.StudentID, "MIOT") {
		t.Errorf("StudentID = %q, want MIOT prefix from institution initials", student.StudentID)
	}
	if len(student.StudentID) != len("MIOT")+6 {
		t.Errorf("StudentID length = %d, want %d", len(student.StudentID), len("MIOT")+6)
	}
	if student.Email != "asha.verma@example.com" {
		t.Errorf("Email = %q, want lowercased and trimmed", student.Email)
	}
	if student.Password == "secret123" {
		t.Error("password stored in plain text")
	}
	if student.Skills == nil {
		t.Error("Skills map not initialized")
	}

	if _, err := store.GetByEmail(context.Background(), "asha.verma@example.com"); err != nil {
		t.Errorf("GetByEmail() after register error = %v", err)
	}
}

func TestRegisterStudentPasswordMismatch(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	req := studentRegisterRequest()
	req.ConfirmPassword = "different"
	_, err := svc.RegisterStudent(context.Background(), req)
	if !errors.Is(err, apperrors.ErrPasswordMismatch) {
		t.Fatalf("RegisterStudent() error = %v, want ErrPasswordMismatch", err)
	}
}

func TestRegisterStudentDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	if _, err := svc.RegisterStudent(context.Background(), studentRegisterRequest()); err != nil {
		t.Fatalf("first RegisterStudent() error = %v", err)
	}

	req := studentRegisterRequest()
	req.RollNumber = "CS2024-018"
	_, err := svc.RegisterStudent(context.Background(), req)
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("second RegisterStudent() error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLoginStudent(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	registered, err := svc.RegisterStudent(context.Background(), studentRegisterRequest())
	if err != nil {
		t.Fatalf("RegisterStudent() error = %v", err)
	}

	student, token, err := svc.LoginStudent(context.Background(), &dto.LoginRequest{
		Email:    "ASHA.VERMA@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("LoginStudent() error = %v", err)
	}
	if student.StudentID != registered.StudentID {
		t.Errorf("StudentID = %q, want %q", student.StudentID, registered.StudentID)
	}
	if token == "" {
		t.Error("no token issued")
	}
}

func TestLoginStudentWrongPassword(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	if _, err := svc.RegisterStudent(context.Background(), studentRegisterRequest()); err != nil {
		t.Fatalf("RegisterStudent() error = %v", err)
	}

	_, _, err := svc.LoginStudent(context.Background(), &dto.LoginRequest{
		Email:    "asha.verma@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("LoginStudent() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginStudentUnknownEmailMapsToInvalidCredentials(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	_, _, err := svc.LoginStudent(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("LoginStudent() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterAdminAutoRegistersCollege(t *testing.T) {
	svc, _, _, colleges := newTestAuthService()

	admin, err := svc.RegisterAdmin(context.Background(), &dto.AdminRegisterRequest{
		Name:            "Dean Iyer",
		Email:           "dean@mit.edu",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Institution:     "Madras Institute of Technology",
		Department:      "Computer Science",
	})
	if err != nil {
		t.Fatalf("RegisterAdmin() error = %v", err)
	}
	if admin.Role != "admin" {
		t.Errorf("Role = %q, want admin default", admin.Role)
	}

	college, err := colleges.GetByName(context.Background(), "Madras Institute of Technology")
	if err != nil {
		t.Fatalf("college not auto-registered: %v", err)
	}
	if college.Code != "MADRAS" {
		t.Errorf("Code = %q, want MADRAS", college.Code)
	}
	if len(college.Departments) != 1 || college.Departments[0].Code != "COMP" {
		t.Errorf("Departments = %+v, want one with code COMP", college.Departments)
	}
	if college.CreatedBy != admin.AdminID {
		t.Errorf("CreatedBy = %q, want %q", college.CreatedBy, admin.AdminID)
	}
}

func TestRegisterAdminExistingCollegeDoesNotBlock(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	first := &dto.AdminRegisterRequest{
		Name:            "Dean Iyer",
		Email:           "dean@mit.edu",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Institution:     "Madras Institute of Technology",
		Department:      "Computer Science",
	}
	if _, err := svc.RegisterAdmin(context.Background(), first); err != nil {
		t.Fatalf("first RegisterAdmin() error = %v", err)
	}

	second := *first
	second.Email = "registrar@mit.edu"
	if _, err := svc.RegisterAdmin(context.Background(), &second); err != nil {
		t.Fatalf("second RegisterAdmin() error = %v", err)
	}
}
