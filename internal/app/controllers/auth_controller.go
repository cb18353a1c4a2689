package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/app/services"
	"github.com/nandan/studenthub/internal/middleware"
)

// AuthController handles registration and login endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterStudent handles student registration
// @Summary Register a student
// @Description Creates a student account and assigns a generated student identifier
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.StudentRegisterRequest true "Student details"
// @Success 201 {object} dto.StudentRegisterResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /register [post]
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req dto.StudentRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.authService.RegisterStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.StudentRegisterResponse{
		Message:   "Student registered successfully",
		StudentID: student.StudentID,
	})
}

// LoginStudent handles student login
// @Summary Log in as a student
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.StudentLoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /login [post]
func (c *AuthController) LoginStudent(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, token, err := c.authService.LoginStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentLoginResponse{
		Message:   "Login successful",
		StudentID: student.StudentID,
		Name:      student.Name,
		Token:     token,
	})
}

// RegisterTeacher handles teacher registration
// @Summary Register a teacher
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.TeacherRegisterRequest true "Teacher details"
// @Success 201 {object} dto.TeacherRegisterResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /teacher/register [post]
func (c *AuthController) RegisterTeacher(ctx *gin.Context) {
	var req dto.TeacherRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	teacher, err := c.authService.RegisterTeacher(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.TeacherRegisterResponse{
		Message:   "Teacher registered successfully",
		TeacherID: teacher.TeacherID,
		Name:      teacher.Name,
	})
}

// LoginTeacher handles teacher login
// @Summary Log in as a teacher
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TeacherLoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /teacher/login [post]
func (c *AuthController) LoginTeacher(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	teacher, token, err := c.authService.LoginTeacher(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TeacherLoginResponse{
		Message:   "Login successful",
		TeacherID: teacher.TeacherID,
		Name:      teacher.Name,
		Token:     token,
	})
}

// RegisterAdmin handles admin registration
// @Summary Register an admin
// @Description Creates an admin account and lazily registers its institution as a college
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AdminRegisterRequest true "Admin details"
// @Success 201 {object} dto.AdminRegisterResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/register [post]
func (c *AuthController) RegisterAdmin(ctx *gin.Context) {
	var req dto.AdminRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	admin, err := c.authService.RegisterAdmin(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AdminRegisterResponse{
		Message:     "Admin registered successfully",
		AdminID:     admin.AdminID,
		Name:        admin.Name,
		Institution: admin.Institution,
		Department:  admin.Department,
	})
}

// LoginAdmin handles admin login
// @Summary Log in as an admin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AdminLoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/login [post]
func (c *AuthController) LoginAdmin(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	admin, token, err := c.authService.LoginAdmin(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminLoginResponse{
		Message:     "Login successful",
		AdminID:     admin.AdminID,
		Name:        admin.Name,
		Institution: admin.Institution,
		Department:  admin.Department,
		Token:       token,
	})
}
