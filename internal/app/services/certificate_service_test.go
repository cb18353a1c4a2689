package services

import (
	"context"
	"errors"
	"testing"

	"github.com/nandan/studenthub/internal/app/models"
	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/pkg/apperrors"
)

func pendingCertStudent(certID string) *models.Student {
	return &models.Student{
		StudentID: "MIT123abc",
		Name:      "Asha",
		Skills:    map[string]int{"SQL": 1},
		AcademicCertificates: []models.AcademicCertificate{{
			ID:              certID,
			Domain:          "Cloud",
			CertificateName: "AWS Fundamentals",
			Skills:          []string{"AWS", "Networking"},
			Status:          models.StatusPending,
		}},
	}
}

func TestSubmitAcademicAlwaysPending(t *testing.T) {
	store := newFakeStudentStore(&models.Student{StudentID: "MIT123abc"})
	svc := NewCertificateService(store)

	cert, err := svc.SubmitAcademic(context.Background(), &dto.AcademicCertificateForm{
		StudentID:       "MIT123abc",
		Domain:          "Cloud",
		CertificateName: "AWS Fundamentals",
		Date:            "2026-01-15",
		IssuedBy:        "AWS",
		Skills:          `["AWS","Networking"]`,
	})
	if err != nil {
		t.Fatalf("SubmitAcademic() error = %v", err)
	}

	if cert.Status != models.StatusPending {
		t.Errorf("Status = %q, want %q", cert.Status, models.StatusPending)
	}
	if cert.ID == "" {
		t.Error("certificate ID is empty")
	}
	if len(cert.Skills) != 2 {
		t.Errorf("len(Skills) = %d, want 2", len(cert.Skills))
	}

	student, _ := store.GetByStudentID(context.Background(), "MIT123abc")
	if len(student.AcademicCertificates) != 1 {
		t.Fatalf("len(AcademicCertificates) = %d, want 1", len(student.AcademicCertificates))
	}
	if student.Skills["AWS"] != 0 {
		t.Error("skills were applied before review")
	}
}

func TestSubmitAcademicRejectsMalformedSkills(t *testing.T) {
	svc := NewCertificateService(newFakeStudentStore(&models.Student{StudentID: "MIT123abc"}))

	_, err := svc.SubmitAcademic(context.Background(), &dto.AcademicCertificateForm{
		StudentID:       "MIT123abc",
		Domain:          "Cloud",
		CertificateName: "AWS Fundamentals",
		Date:            "2026-01-15",
		IssuedBy:        "AWS",
		Skills:          "AWS,Networking",
	})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("SubmitAcademic() error = %v, want ErrBadRequest", err)
	}
}

func TestReviewApproveAppliesSkills(t *testing.T) {
	store := newFakeStudentStore(pendingCertStudent("cert-1"))
	svc := NewCertificateService(store)

	cert, err := svc.Review(context.Background(), "MIT123abc", "cert-1", &dto.ReviewRequest{
		Status:   "approved",
		Feedback: "Well done",
	})
	if err != nil {
		t.Fatalf("Review() error = %v", err)
	}

	if cert.Status != models.StatusApproved {
		t.Errorf("Status = %q, want approved", cert.Status)
	}
	if cert.ReviewedAt == nil {
		t.Error("ReviewedAt not set")
	}
	if cert.Feedback != "Well done" {
		t.Errorf("Feedback = %q, want %q", cert.Feedback, "Well done")
	}

	student, _ := store.GetByStudentID(context.Background(), "MIT123abc")
	if student.Skills["AWS"] != 1 || student.Skills["Networking"] != 1 {
		t.Errorf("Skills = %v, want AWS and Networking at 1", student.Skills)
	}
	if student.Skills["SQL"] != 1 {
		t.Errorf("SQL count = %d, want 1", student.Skills["SQL"])
	}
}

func TestReviewRejectLeavesSkillsAlone(t *testing.T) {
	store := newFakeStudentStore(pendingCertStudent("cert-1"))
	svc := NewCertificateService(store)

	cert, err := svc.Review(context.Background(), "MIT123abc", "cert-1", &dto.ReviewRequest{
		Status:   "rejected",
		Feedback: "Blurry image",
	})
	if err != nil {
		t.Fatalf("Review() error = %v", err)
	}
	if cert.Status != models.StatusRejected {
		t.Errorf("Status = %q, want rejected", cert.Status)
	}

	student, _ := store.GetByStudentID(context.Background(), "MIT123abc")
	if _, ok := student.Skills["AWS"]; ok {
		t.Error("rejected certificate must not contribute skills")
	}
}

func TestReviewTwiceFails(t *testing.T) {
	store := newFakeStudentStore(pendingCertStudent("cert-1"))
	svc := NewCertificateService(store)

	if _, err := svc.Review(context.Background(), "MIT123abc", "cert-1", &dto.ReviewRequest{Status: "approved"}); err != nil {
		t.Fatalf("first Review() error = %v", err)
	}

	_, err := svc.Review(context.Background(), "MIT123abc", "cert-1", &dto.ReviewRequest{Status: "rejected"})
	if !errors.Is(err, apperrors.ErrCertificateReviewed) {
		t.Fatalf("second Review() error = %v, want ErrCertificateReviewed", err)
	}

	// the second verdict must not have double-applied or flipped anything
	student, _ := store.GetByStudentID(context.Background(), "MIT123abc")
	if student.AcademicCertificates[0].Status != models.StatusApproved {
		t.Errorf("Status = %q, want approved", student.AcademicCertificates[0].Status)
	}
	if student.Skills["AWS"] != 1 {
		t.Errorf("AWS count = %d, want 1", student.Skills["AWS"])
	}
}

func TestReviewInvalidStatus(t *testing.T) {
	svc := NewCertificateService(newFakeStudentStore(pendingCertStudent("cert-1")))

	_, err := svc.Review(context.Background(), "MIT123abc", "cert-1", &dto.ReviewRequest{Status: "maybe"})
	if !errors.Is(err, apperrors.ErrInvalidReviewStatus) {
		t.Fatalf("Review() error = %v, want ErrInvalidReviewStatus", err)
	}
}

func TestReviewUnknownCertificate(t *testing.T) {
	svc := NewCertificateService(newFakeStudentStore(pendingCertStudent("cert-1")))

	_, err := svc.Review(context.Background(), "MIT123abc", "cert-404", &dto.ReviewRequest{Status: "approved"})
	if !errors.Is(err, apperrors.ErrCertificateNotFound) {
		t.Fatalf("Review() error = %v, want ErrCertificateNotFound", err)
	}
}

func TestListPendingAnnotatesOwner(t *testing.T) {
	reviewed := pendingCertStudent("cert-2")
	reviewed.StudentID = "MIT456def"
	reviewed.Name = "Ravi"
	reviewed.AcademicCertificates[0].Status = models.StatusApproved

	store := newFakeStudentStore(pendingCertStudent("cert-1"), reviewed)
	svc := NewCertificateService(store)

	pending, err := svc.ListPending(context.Background())
	if err != nil {
		t.Fatalf("ListPending() error = %v", err)
	}

	if len(pending) != 1 {
		t.Fatalf("len(pending) = %d, want 1", len(pending))
	}
	if pending[0].ID != "cert-1" {
		t.Errorf("certificate ID = %q, want cert-1", pending[0].ID)
	}
	if pending[0].StudentID != "MIT123abc" || pending[0].StudentName != "Asha" {
		t.Errorf("owner = %s/%s, want MIT123abc/Asha", pending[0].StudentID, pending[0].StudentName)
	}
}

func TestDeleteAcademicMissingCertSucceeds(t *testing.T) {
	store := newFakeStudentStore(pendingCertStudent("cert-1"))
	svc := NewCertificateService(store)

	if err := svc.DeleteAcademic(context.Background(), "MIT123abc", "cert-404"); err != nil {
		t.Fatalf("DeleteAcademic() error = %v", err)
	}

	student, _ := store.GetByStudentID(context.Background(), "MIT123abc")
	if len(student.AcademicCertificates) != 1 {
		t.Errorf("len(AcademicCertificates) = %d, want 1", len(student.AcademicCertificates))
	}
}

func TestDeleteAcademicUnknownStudent(t *testing.T) {
	svc := NewCertificateService(newFakeStudentStore())

	err := svc.DeleteAcademic(context.Background(), "nope", "cert-1")
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("DeleteAcademic() error = %v, want ErrStudentNotFound", err)
	}
}

func TestPersonalCertificateLifecycle(t *testing.T) {
	store := newFakeStudentStore(&models.Student{StudentID: "MIT123abc"})
	svc := NewCertificateService(store)

	cert, err := svc.SubmitPersonal(context.Background(), &dto.PersonalCertificateForm{
		StudentID: "MIT123abc",
		Name:      "Hackathon Winner",
		Date:      "2026-02-01",
		Category:  "competition",
		Issuer:    "DevFest",
	})
	if err != nil {
		t.Fatalf("SubmitPersonal() error = %v", err)
	}

	listed, err := svc.ListPersonal(context.Background(), "MIT123abc")
	if err != nil {
		t.Fatalf("ListPersonal() error = %v", err)
	}
	if len(listed) != 1 || listed[0].ID != cert.ID {
		t.Fatalf("listed = %+v, want the submitted certificate", listed)
	}

	if err := svc.DeletePersonal(context.Background(), "MIT123abc", cert.ID); err != nil {
		t.Fatalf("DeletePersonal() error = %v", err)
	}
	listed, _ = svc.ListPersonal(context.Background(), "MIT123abc")
	if len(listed) != 0 {
		t.Errorf("len(listed) = %d after delete, want 0", len(listed))
	}
}
