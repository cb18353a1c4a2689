package models

// RoleType identifies the three classes of accounts.
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleTeacher RoleType = "teacher"
	RoleAdmin   RoleType = "admin"
)

// CertificateStatus is the review state of an academic certificate.
type CertificateStatus string

const (
	StatusPending  CertificateStatus = "pending"
	StatusApproved CertificateStatus = "approved"
	StatusRejected CertificateStatus = "rejected"
)

// ValidReviewStatus reports whether s is a status a reviewer may assign.
func ValidReviewStatus(s string) bool {
	return s == string(StatusApproved) || s == string(StatusRejected)
}
