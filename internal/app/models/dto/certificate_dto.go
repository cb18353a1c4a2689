package dto

import "github.com/nandan/studenthub/internal/app/models"

// AcademicCertificateForm is the multipart body of an academic-certificate
// submission. The skills field arrives as a JSON-encoded array string; the
// optional image arrives as a file part and is handled by the controller.
type AcademicCertificateForm struct {
	StudentID        string `form:"studentId" validate:"required"`
	Domain           string `form:"domain" validate:"required"`
	CertificateName  string `form:"certificateName" validate:"required"`
	Image            string `form:"image"`
	CertificateURL   string `form:"certificateUrl"`
	Date             string `form:"date" validate:"required"`
	IssuedBy         string `form:"issuedBy" validate:"required"`
	Description      string `form:"description"`
	Skills           string `form:"skills"`
	Duration         string `form:"duration"`
	Location         string `form:"location"`
	OrganizationType string `form:"organizationType"`
}

// PersonalCertificateForm is the multipart body of a personal-certificate
// submission.
type PersonalCertificateForm struct {
	StudentID string `form:"studentId" validate:"required"`
	Name      string `form:"name" validate:"required"`
	Image     string `form:"image"`
	URL       string `form:"url"`
	Date      string `form:"date" validate:"required"`
	Category  string `form:"category" validate:"required"`
	Issuer    string `form:"issuer" validate:"required"`
}

// ReviewRequest is the teacher's verdict on a pending academic certificate.
type ReviewRequest struct {
	Status   string `json:"status" binding:"required"`
	Feedback string `json:"feedback"`
}

// PendingCertificate is one pending submission annotated with its owner.
type PendingCertificate struct {
	models.AcademicCertificate
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
}

// CertificateResponse wraps a stored certificate in the original's
// submission-acknowledgement shape.
type CertificateResponse struct {
	Message     string      `json:"message"`
	Certificate interface{} `json:"certificate"`
}
