package dto

import "github.com/nandan/studenthub/internal/app/models"

// SubjectInput is one row of a per-subject breakdown.
type SubjectInput struct {
	Name  string `json:"name" binding:"required"`
	Marks int    `json:"marks"`
	Grade string `json:"grade"`
}

// AddMarksRequest records one (semester, year) SGPA entry. Pointer fields
// distinguish "absent" from zero so the presence check matches the original.
type AddMarksRequest struct {
	Semester *int           `json:"semester"`
	Year     *int           `json:"year"`
	SGPA     *float64       `json:"sgpa"`
	Subjects []SubjectInput `json:"subjects"`
}

// UpdateSGPARequest overwrites the SGPA of an existing (semester, year) record.
type UpdateSGPARequest struct {
	Semester *int     `json:"semester"`
	Year     *int     `json:"year"`
	SGPA     *float64 `json:"sgpa"`
}

// MarksResponse is the student-side read model.
type MarksResponse struct {
	SemesterMarks []models.SemesterMark `json:"semesterMarks"`
	CGPA          float64               `json:"cgpa"`
}

// AddMarksResponse acknowledges a marks entry with the recomputed CGPA.
type AddMarksResponse struct {
	Message       string                `json:"message"`
	CGPA          float64               `json:"cgpa"`
	SemesterMarks []models.SemesterMark `json:"semesterMarks,omitempty"`
	Student       *MarksStudentSummary  `json:"student,omitempty"`
}

// MarksStudentSummary is the trailer on a marks-entry acknowledgement.
type MarksStudentSummary struct {
	StudentID          string  `json:"studentId"`
	Name               string  `json:"name"`
	CGPA               float64 `json:"cgpa"`
	SemesterMarksCount int     `json:"semesterMarksCount"`
}

// TeacherMarksResponse is the teacher's per-student marks projection.
type TeacherMarksResponse struct {
	StudentID     string                `json:"studentId"`
	Name          string                `json:"name"`
	SemesterMarks []models.SemesterMark `json:"semesterMarks"`
	CGPA          float64               `json:"cgpa"`
}
