package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/nandan/studenthub/internal/app/models"
	"github.com/nandan/studenthub/internal/app/models/dto"
)

// CollegeService handles college and department management
type CollegeService struct {
	collegeStore CollegeStore
}

// NewCollegeService creates a new college service instance
func NewCollegeService(collegeStore CollegeStore) *CollegeService {
	return &CollegeService{collegeStore: collegeStore}
}

// Create registers a college with its initial departments.
func (s *CollegeService) Create(ctx context.Context, req *dto.CreateCollegeRequest) (*models.College, error) {
	departments := make([]models.Department, 0, len(req.Departments))
	for _, d := range req.Departments {
		departments = append(departments, models.Department{Name: d.Name, Code: d.Code})
	}

	college := &models.College{
		CollegeID:   uuid.NewString(),
		Name:        req.Name,
		Code:        req.Code,
		Address:     req.Address,
		Departments: departments,
		CreatedBy:   req.CreatedBy,
	}

	if err := s.collegeStore.Create(ctx, college); err != nil {
		return nil, err
	}
	return college, nil
}

// ListAll returns every registered college.
func (s *CollegeService) ListAll(ctx context.Context) ([]*models.College, error) {
	return s.collegeStore.ListAll(ctx)
}

// AddDepartment appends a department to an existing college.
func (s *CollegeService) AddDepartment(ctx context.Context, collegeID string, req *dto.DepartmentRequest) (*models.College, error) {
	return s.collegeStore.AddDepartment(ctx, collegeID, models.Department{Name: req.Name, Code: req.Code})
}
