package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nandan/studenthub/internal/app/models"
	"github.com/nandan/studenthub/internal/app/models/dto"
)

// ProjectService handles student portfolio projects
type ProjectService struct {
	studentStore StudentStore
}

// NewProjectService creates a new project service instance
func NewProjectService(studentStore StudentStore) *ProjectService {
	return &ProjectService{studentStore: studentStore}
}

// Create appends a project to the student's portfolio.
func (s *ProjectService) Create(ctx context.Context, req *dto.CreateProjectRequest) (*models.Project, error) {
	project := models.Project{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		GithubLink:  req.GithubLink,
		DeployLink:  req.DeployLink,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := s.studentStore.Mutate(ctx, req.StudentID, func(st *models.Student) error {
		st.Projects = append(st.Projects, project)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List returns the student's projects.
func (s *ProjectService) List(ctx context.Context, studentID string) ([]models.Project, error) {
	student, err := s.studentStore.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.Projects == nil {
		return []models.Project{}, nil
	}
	return student.Projects, nil
}

// Delete removes a project, silently succeeding when it is already gone.
func (s *ProjectService) Delete(ctx context.Context, studentID, projectID string) error {
	_, err := s.studentStore.Mutate(ctx, studentID, func(st *models.Student) error {
		kept := st.Projects[:0]
		for _, p := range st.Projects {
			if p.ID != projectID {
				kept = append(kept, p)
			}
		}
		st.Projects = kept
		return nil
	})
	return err
}
