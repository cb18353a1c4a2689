package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/nandan/studenthub/internal/app/models"
	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/pkg/apperrors"
	"github.com/nandan/studenthub/internal/pkg/logger"
)

// CertificateService handles personal and academic certificates, including
// the teacher review workflow
type CertificateService struct {
	studentStore StudentStore
}

// NewCertificateService creates a new certificate service instance
func NewCertificateService(studentStore StudentStore) *CertificateService {
	return &CertificateService{studentStore: studentStore}
}

// SubmitAcademic appends a new academic certificate to the student's
// document. Submissions always start out pending regardless of anything the
// caller sends.
func (s *CertificateService) SubmitAcademic(ctx context.Context, form *dto.AcademicCertificateForm) (*models.AcademicCertificate, error) {
	skills, err := parseSkillTags(form.Skills)
	if err != nil {
		return nil, apperrors.NewBadRequestError("skills must be a JSON array of strings")
	}

	cert := models.AcademicCertificate{
		ID:               uuid.NewString(),
		Domain:           form.Domain,
		CertificateName:  form.CertificateName,
		Image:            form.Image,
		CertificateURL:   form.CertificateURL,
		Date:             form.Date,
		IssuedBy:         form.IssuedBy,
		Description:      form.Description,
		Skills:           skills,
		Duration:         form.Duration,
		Location:         form.Location,
		OrganizationType: form.OrganizationType,
		Status:           models.StatusPending,
		SubmittedAt:      time.Now().UTC(),
	}

	_, err = s.studentStore.Mutate(ctx, form.StudentID, func(st *models.Student) error {
		st.AcademicCertificates = append(st.AcademicCertificates, cert)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("studentId", form.StudentID).
		Str("certificateId", cert.ID).
		Msg("Academic certificate submitted")
	return &cert, nil
}

// ListAcademic returns the student's academic certificates.
func (s *CertificateService) ListAcademic(ctx context.Context, studentID string) ([]models.AcademicCertificate, error) {
	student, err := s.studentStore.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.AcademicCertificates == nil {
		return []models.AcademicCertificate{}, nil
	}
	return student.AcademicCertificates, nil
}

// DeleteAcademic removes a certificate from the student's document. Removing
// a certificate that is already gone succeeds silently; only a missing
// student is an error.
func (s *CertificateService) DeleteAcademic(ctx context.Context, studentID, certificateID string) error {
	_, err := s.studentStore.Mutate(ctx, studentID, func(st *models.Student) error {
		kept := st.AcademicCertificates[:0]
		for _, c := range st.AcademicCertificates {
			if c.ID != certificateID {
				kept = append(kept, c)
			}
		}
		st.AcademicCertificates = kept
		return nil
	})
	return err
}

// ListPending flattens every student's pending academic certificates into one
// reviewer queue, each entry annotated with its owner.
func (s *CertificateService) ListPending(ctx context.Context) ([]dto.PendingCertificate, error) {
	students, err := s.studentStore.ListWithPendingCertificates(ctx)
	if err != nil {
		return nil, err
	}

	pending := []dto.PendingCertificate{}
	for _, st := range students {
		for _, c := range st.AcademicCertificates {
			if c.Status != models.StatusPending {
				continue
			}
			pending = append(pending, dto.PendingCertificate{
				AcademicCertificate: c,
				StudentID:           st.StudentID,
				StudentName:         st.Name,
			})
		}
	}
	return pending, nil
}

// Review records a verdict on a pending certificate. Approval folds the
// certificate's skill tags into the student's aggregate counts; certificates
// already reviewed cannot be reviewed again.
func (s *CertificateService) Review(ctx context.Context, studentID, certificateID string, req *dto.ReviewRequest) (*models.AcademicCertificate, error) {
	if !models.ValidReviewStatus(req.Status) {
		return nil, apperrors.ErrInvalidReviewStatus
	}

	var reviewed models.AcademicCertificate
	_, err := s.studentStore.Mutate(ctx, studentID, func(st *models.Student) error {
		idx := -1
		for i := range st.AcademicCertificates {
			if st.AcademicCertificates[i].ID == certificateID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return apperrors.ErrCertificateNotFound
		}

		cert := &st.AcademicCertificates[idx]
		if cert.Status != models.StatusPending {
			return apperrors.ErrCertificateReviewed
		}

		now := time.Now().UTC()
		cert.Status = models.CertificateStatus(req.Status)
		cert.Feedback = req.Feedback
		cert.ReviewedAt = &now

		if cert.Status == models.StatusApproved {
			st.Skills = applySkills(st.Skills, cert.Skills)
		}
		reviewed = *cert
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("studentId", studentID).
		Str("certificateId", certificateID).
		Str("status", req.Status).
		Msg("Academic certificate reviewed")
	return &reviewed, nil
}

// SubmitPersonal appends a self-reported certificate; there is no review
// step for these.
func (s *CertificateService) SubmitPersonal(ctx context.Context, form *dto.PersonalCertificateForm) (*models.PersonalCertificate, error) {
	cert := models.PersonalCertificate{
		ID:       uuid.NewString(),
		Name:     form.Name,
		Image:    form.Image,
		URL:      form.URL,
		Date:     form.Date,
		Category: form.Category,
		Issuer:   form.Issuer,
		AddedAt:  time.Now().UTC(),
	}

	_, err := s.studentStore.Mutate(ctx, form.StudentID, func(st *models.Student) error {
		st.PersonalCertificates = append(st.PersonalCertificates, cert)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

// ListPersonal returns the student's personal certificates.
func (s *CertificateService) ListPersonal(ctx context.Context, studentID string) ([]models.PersonalCertificate, error) {
	student, err := s.studentStore.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.PersonalCertificates == nil {
		return []models.PersonalCertificate{}, nil
	}
	return student.PersonalCertificates, nil
}

// DeletePersonal removes a personal certificate, silently succeeding when it
// is already gone.
func (s *CertificateService) DeletePersonal(ctx context.Context, studentID, certificateID string) error {
	_, err := s.studentStore.Mutate(ctx, studentID, func(st *models.Student) error {
		kept := st.PersonalCertificates[:0]
		for _, c := range st.PersonalCertificates {
			if c.ID != certificateID {
				kept = append(kept, c)
			}
		}
		st.PersonalCertificates = kept
		return nil
	})
	return err
}

// parseSkillTags decodes the JSON-encoded skills field of a multipart
// submission. An empty field means no tags.
func parseSkillTags(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
