package services

import (
	"context"
	"strings"

	"github.com/nandan/studenthub/internal/app/models"
	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/pkg/apperrors"
)

const (
	searchMinLength = 2
	searchLimit     = 10
)

// StudentService handles student lookups, profile management, and search
type StudentService struct {
	studentStore StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentStore StudentStore) *StudentService {
	return &StudentService{studentStore: studentStore}
}

// Get returns the full student document.
func (s *StudentService) Get(ctx context.Context, studentID string) (*models.Student, error) {
	return s.studentStore.GetByStudentID(ctx, studentID)
}

// GetProfile returns the student's profile sub-document.
func (s *StudentService) GetProfile(ctx context.Context, studentID string) (*models.Profile, error) {
	student, err := s.studentStore.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return &student.Profile, nil
}

// UpdateProfile merges the supplied fields into the profile; omitted fields
// are left as they are. Document images are passed in as data URIs keyed by
// their profile field name.
func (s *StudentService) UpdateProfile(ctx context.Context, studentID string, form *dto.ProfileUpdateForm, documents map[string]string) (*models.Student, error) {
	return s.studentStore.Mutate(ctx, studentID, func(st *models.Student) error {
		p := &st.Profile
		setIfPresent(&p.AadharNumber, form.AadharNumber)
		setIfPresent(&p.MobileNumber, form.MobileNumber)
		setIfPresent(&p.CollegeEmail, form.CollegeEmail)
		setIfPresent(&p.LinkedinProfile, form.LinkedinProfile)
		setIfPresent(&p.GithubProfile, form.GithubProfile)
		if form.Skills != "" {
			p.Skills = splitList(form.Skills)
		}
		if form.Languages != "" {
			p.Languages = splitList(form.Languages)
		}
		if form.Hobbies != "" {
			p.Hobbies = splitList(form.Hobbies)
		}
		if form.CurrentSGPA != nil {
			p.CurrentSGPA = *form.CurrentSGPA
		}
		if form.OverallCGPA != nil {
			p.OverallCGPA = *form.OverallCGPA
		}

		setIfPresent(&p.ProfileImage, documents["profileImage"])
		setIfPresent(&p.Class10Certificate, documents["class10Certificate"])
		setIfPresent(&p.Class12Certificate, documents["class12Certificate"])
		setIfPresent(&p.DiplomaCertificate, documents["diplomaCertificate"])
		setIfPresent(&p.BachelorDegree, documents["bachelorDegree"])
		setIfPresent(&p.MasterDegree, documents["masterDegree"])
		setIfPresent(&p.DoctorDegree, documents["doctorDegree"])
		return nil
	})
}

// Search finds students whose identifying fields contain the query term.
// Terms shorter than two characters return no matches.
func (s *StudentService) Search(ctx context.Context, term string) ([]*models.Student, error) {
	term = strings.TrimSpace(term)
	if len(term) < searchMinLength {
		return nil, apperrors.NewBadRequestError("search query must be at least 2 characters")
	}
	return s.studentStore.Search(ctx, term, searchLimit)
}

// ListAll returns every student document.
func (s *StudentService) ListAll(ctx context.Context) ([]*models.Student, error) {
	return s.studentStore.ListAll(ctx)
}

// ListSummaries returns the teacher-dashboard projection of every student.
func (s *StudentService) ListSummaries(ctx context.Context) ([]dto.StudentSummary, error) {
	return s.studentStore.ListSummaries(ctx)
}

func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
