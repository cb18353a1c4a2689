package services

import (
	"context"

	"github.com/nandan/studenthub/internal/app/models"
)

// TeacherService handles teacher directory lookups
type TeacherService struct {
	teacherStore TeacherStore
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherStore TeacherStore) *TeacherService {
	return &TeacherService{teacherStore: teacherStore}
}

// ListAll returns every teacher account.
func (s *TeacherService) ListAll(ctx context.Context) ([]*models.Teacher, error) {
	return s.teacherStore.ListAll(ctx)
}
