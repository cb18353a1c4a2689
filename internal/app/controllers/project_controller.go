package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/app/services"
	"github.com/nandan/studenthub/internal/middleware"
)

// ProjectController handles student portfolio project endpoints
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService *services.ProjectService) *ProjectController {
	return &ProjectController{projectService: projectService}
}

// Create adds a project to a student's portfolio
// @Summary Add a project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /projects [post]
func (c *ProjectController) Create(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	project, err := c.projectService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Project added successfully",
		"project": project,
	})
}

// List returns a student's projects
// @Summary List a student's projects
// @Tags projects
// @Produce json
// @Param studentId path string true "Student identifier"
// @Success 200 {array} models.Project
// @Failure 404 {object} dto.ErrorResponse
// @Router /projects/{studentId} [get]
func (c *ProjectController) List(ctx *gin.Context) {
	projects, err := c.projectService.List(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, projects)
}

// Delete removes a project
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Param studentId path string true "Student identifier"
// @Param projectId path string true "Project identifier"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /projects/{studentId}/{projectId} [delete]
func (c *ProjectController) Delete(ctx *gin.Context) {
	err := c.projectService.Delete(ctx, ctx.Param("studentId"), ctx.Param("projectId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Project deleted successfully"})
}
