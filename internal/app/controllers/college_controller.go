package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/app/services"
	"github.com/nandan/studenthub/internal/middleware"
)

// CollegeController handles college and department endpoints
type CollegeController struct {
	collegeService *services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService *services.CollegeService) *CollegeController {
	return &CollegeController{collegeService: collegeService}
}

// Create registers a college
// @Summary Create a college
// @Tags colleges
// @Accept json
// @Produce json
// @Param request body dto.CreateCollegeRequest true "College details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /colleges [post]
func (c *CollegeController) Create(ctx *gin.Context) {
	var req dto.CreateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	college, err := c.collegeService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "College created successfully",
		"college": college,
	})
}

// List returns every registered college
// @Summary List colleges
// @Tags colleges
// @Produce json
// @Success 200 {array} models.College
// @Failure 400 {object} dto.ErrorResponse
// @Router /colleges [get]
func (c *CollegeController) List(ctx *gin.Context) {
	colleges, err := c.collegeService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, colleges)
}

// AddDepartment appends a department to a college
// @Summary Add a department to a college
// @Tags colleges
// @Accept json
// @Produce json
// @Param collegeId path string true "College identifier"
// @Param request body dto.DepartmentRequest true "Department"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /colleges/{collegeId}/departments [post]
func (c *CollegeController) AddDepartment(ctx *gin.Context) {
	var req dto.DepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	college, err := c.collegeService.AddDepartment(ctx, ctx.Param("collegeId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Department added successfully",
		"college": college,
	})
}
