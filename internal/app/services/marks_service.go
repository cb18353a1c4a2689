package services

import (
	"context"
	"math"

	"github.com/nandan/studenthub/internal/app/models"
	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/pkg/apperrors"
	"github.com/nandan/studenthub/internal/pkg/logger"
)

// MarksService handles semester marks and CGPA upkeep
type MarksService struct {
	studentStore StudentStore
}

// NewMarksService creates a new marks service instance
func NewMarksService(studentStore StudentStore) *MarksService {
	return &MarksService{studentStore: studentStore}
}

// AddMarks records one (semester, year) entry. At most one record may exist
// per (semester, year) pair; the CGPA is recomputed from the full list.
func (s *MarksService) AddMarks(ctx context.Context, studentID string, req *dto.AddMarksRequest) (*models.Student, error) {
	if req.Semester == nil || req.Year == nil || req.SGPA == nil {
		return nil, apperrors.NewBadRequestError("semester, year and sgpa are required")
	}

	record := models.SemesterMark{
		Semester: *req.Semester,
		Year:     *req.Year,
		SGPA:     *req.SGPA,
		Subjects: subjectsFromInput(req.Subjects),
	}

	student, err := s.studentStore.Mutate(ctx, studentID, func(st *models.Student) error {
		for _, m := range st.SemesterMarks {
			if m.Semester == record.Semester && m.Year == record.Year {
				return apperrors.ErrMarksAlreadyExist
			}
		}
		st.SemesterMarks = append(st.SemesterMarks, record)
		st.CGPA = ComputeCGPA(st.SemesterMarks)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("studentId", studentID).
		Int("semester", record.Semester).
		Int("year", record.Year).
		Msg("Semester marks added")
	return student, nil
}

// UpdateSGPA overwrites the SGPA of an existing (semester, year) record and
// recomputes the CGPA.
func (s *MarksService) UpdateSGPA(ctx context.Context, studentID string, req *dto.UpdateSGPARequest) (*models.Student, error) {
	if req.Semester == nil || req.Year == nil || req.SGPA == nil {
		return nil, apperrors.NewBadRequestError("semester, year and sgpa are required")
	}

	student, err := s.studentStore.Mutate(ctx, studentID, func(st *models.Student) error {
		for i := range st.SemesterMarks {
			if st.SemesterMarks[i].Semester == *req.Semester && st.SemesterMarks[i].Year == *req.Year {
				st.SemesterMarks[i].SGPA = *req.SGPA
				st.CGPA = ComputeCGPA(st.SemesterMarks)
				return nil
			}
		}
		return apperrors.ErrSemesterRecordNotFound
	})
	if err != nil {
		return nil, err
	}
	return student, nil
}

// GetMarks returns the student's marks together with the current CGPA.
func (s *MarksService) GetMarks(ctx context.Context, studentID string) (*dto.MarksResponse, error) {
	student, err := s.studentStore.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	marks := student.SemesterMarks
	if marks == nil {
		marks = []models.SemesterMark{}
	}
	return &dto.MarksResponse{SemesterMarks: marks, CGPA: student.CGPA}, nil
}

// ComputeCGPA is the unweighted mean of every recorded SGPA, rounded to two
// decimal places. No records means zero.
func ComputeCGPA(marks []models.SemesterMark) float64 {
	if len(marks) == 0 {
		return 0
	}
	var sum float64
	for _, m := range marks {
		sum += m.SGPA
	}
	return math.Round(sum/float64(len(marks))*100) / 100
}

func subjectsFromInput(subjects []dto.SubjectInput) []models.SubjectMark {
	out := make([]models.SubjectMark, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, models.SubjectMark{Name: s.Name, Marks: s.Marks, Grade: s.Grade})
	}
	return out
}
