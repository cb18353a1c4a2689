package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/app/services"
	"github.com/nandan/studenthub/internal/middleware"
)

// profileDocumentFields are the multipart file parts a profile update may
// carry, keyed by the profile field they land in.
var profileDocumentFields = []string{
	"profileImage",
	"class10Certificate",
	"class12Certificate",
	"diplomaCertificate",
	"bachelorDegree",
	"masterDegree",
	"doctorDegree",
}

// StudentController handles student lookup, profile, search, and listing
// endpoints
type StudentController struct {
	studentService *services.StudentService
	teacherService *services.TeacherService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, teacherService *services.TeacherService) *StudentController {
	return &StudentController{studentService: studentService, teacherService: teacherService}
}

// Get returns the full student document
// @Summary Get a student
// @Tags students
// @Produce json
// @Param studentId path string true "Student identifier"
// @Success 200 {object} models.Student
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{studentId} [get]
func (c *StudentController) Get(ctx *gin.Context) {
	student, err := c.studentService.Get(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// GetProfile returns the student's profile sub-document
// @Summary Get a student's profile
// @Tags students
// @Produce json
// @Param studentId path string true "Student identifier"
// @Success 200 {object} models.Profile
// @Failure 404 {object} dto.ErrorResponse
// @Router /profile/{studentId} [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	profile, err := c.studentService.GetProfile(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// UpdateProfile merges profile fields and uploaded documents
// @Summary Update a student's profile
// @Description Multipart merge-update; omitted fields stay untouched and uploaded documents are stored as data URIs.
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param studentId path string true "Student identifier"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /profile/{studentId} [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	var form dto.ProfileUpdateForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	documents := map[string]string{}
	for _, field := range profileDocumentFields {
		header, err := ctx.FormFile(field)
		if err != nil {
			continue
		}
		dataURI, err := fileToDataURI(header)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		documents[field] = dataURI
	}

	student, err := c.studentService.UpdateProfile(ctx, ctx.Param("studentId"), &form, documents)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"profile": student.Profile,
	})
}

// Search finds students by a substring query
// @Summary Search students
// @Tags students
// @Produce json
// @Param query query string true "Search term, at least 2 characters"
// @Success 200 {array} models.Student
// @Failure 400 {object} dto.ErrorResponse
// @Router /search/students [get]
func (c *StudentController) Search(ctx *gin.Context) {
	students, err := c.studentService.Search(ctx, ctx.Query("query"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// ListStudents returns every student document
// @Summary List all students
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Student
// @Failure 401 {object} dto.ErrorResponse
// @Router /admin/students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// ListTeachers returns every teacher account
// @Summary List all teachers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Teacher
// @Failure 401 {object} dto.ErrorResponse
// @Router /admin/teachers [get]
func (c *StudentController) ListTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, teachers)
}

// ListSummaries returns the teacher-dashboard student projection
// @Summary List student summaries
// @Tags students
// @Produce json
// @Success 200 {array} dto.StudentSummary
// @Failure 400 {object} dto.ErrorResponse
// @Router /teacher/students [get]
func (c *StudentController) ListSummaries(ctx *gin.Context) {
	summaries, err := c.studentService.ListSummaries(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}
