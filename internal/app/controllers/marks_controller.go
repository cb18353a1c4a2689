package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandan/studenthub/internal/app/models"
	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/app/services"
	"github.com/nandan/studenthub/internal/middleware"
)

// MarksController handles semester marks endpoints for students and teachers
type MarksController struct {
	marksService   *services.MarksService
	studentService *services.StudentService
}

// NewMarksController creates a new MarksController
func NewMarksController(marksService *services.MarksService, studentService *services.StudentService) *MarksController {
	return &MarksController{marksService: marksService, studentService: studentService}
}

// GetMarks returns a student's marks and CGPA
// @Summary Get a student's semester marks
// @Tags marks
// @Produce json
// @Param studentId path string true "Student identifier"
// @Success 200 {object} dto.MarksResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{studentId}/marks [get]
func (c *MarksController) GetMarks(ctx *gin.Context) {
	marks, err := c.marksService.GetMarks(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, marks)
}

// AddMarks records a semester marks entry
// @Summary Add semester marks
// @Description Records one (semester, year) SGPA entry with optional subjects and recomputes the CGPA.
// @Tags marks
// @Accept json
// @Produce json
// @Param studentId path string true "Student identifier"
// @Param request body dto.AddMarksRequest true "Marks entry"
// @Success 201 {object} dto.AddMarksResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{studentId}/marks [post]
func (c *MarksController) AddMarks(ctx *gin.Context) {
	var req dto.AddMarksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.marksService.AddMarks(ctx, ctx.Param("studentId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AddMarksResponse{
		Message:       "Marks added successfully",
		CGPA:          student.CGPA,
		SemesterMarks: student.SemesterMarks,
		Student: &dto.MarksStudentSummary{
			StudentID:          student.StudentID,
			Name:               student.Name,
			CGPA:               student.CGPA,
			SemesterMarksCount: len(student.SemesterMarks),
		},
	})
}

// TeacherAddMarks records a marks entry on a teacher's behalf
// @Summary Add semester marks as a teacher
// @Tags marks
// @Accept json
// @Produce json
// @Param studentId path string true "Student identifier"
// @Param request body dto.AddMarksRequest true "Marks entry"
// @Success 201 {object} dto.AddMarksResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/marks/{studentId} [post]
func (c *MarksController) TeacherAddMarks(ctx *gin.Context) {
	var req dto.AddMarksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	// Teacher entries never carry a subject breakdown.
	req.Subjects = nil

	student, err := c.marksService.AddMarks(ctx, ctx.Param("studentId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AddMarksResponse{
		Message: "Marks added successfully",
		CGPA:    student.CGPA,
	})
}

// UpdateSGPA overwrites the SGPA of an existing record
// @Summary Update a semester SGPA
// @Tags marks
// @Accept json
// @Produce json
// @Param studentId path string true "Student identifier"
// @Param request body dto.UpdateSGPARequest true "SGPA update"
// @Success 200 {object} dto.AddMarksResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/marks/{studentId} [put]
func (c *MarksController) UpdateSGPA(ctx *gin.Context) {
	var req dto.UpdateSGPARequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.marksService.UpdateSGPA(ctx, ctx.Param("studentId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AddMarksResponse{
		Message: "SGPA updated successfully",
		CGPA:    student.CGPA,
	})
}

// TeacherGetMarks returns the teacher's marks projection for one student
// @Summary Get a student's marks as a teacher
// @Tags marks
// @Produce json
// @Param studentId path string true "Student identifier"
// @Success 200 {object} dto.TeacherMarksResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/student/{studentId}/marks [get]
func (c *MarksController) TeacherGetMarks(ctx *gin.Context) {
	student, err := c.studentService.Get(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	marks := student.SemesterMarks
	if marks == nil {
		marks = []models.SemesterMark{}
	}
	ctx.JSON(http.StatusOK, dto.TeacherMarksResponse{
		StudentID:     student.StudentID,
		Name:          student.Name,
		SemesterMarks: marks,
		CGPA:          student.CGPA,
	})
}
