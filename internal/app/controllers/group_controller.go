package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/app/services"
	"github.com/nandan/studenthub/internal/middleware"
)

// GroupController handles group management endpoints
type GroupController struct {
	groupService *services.GroupService
}

// NewGroupController creates a new GroupController
func NewGroupController(groupService *services.GroupService) *GroupController {
	return &GroupController{groupService: groupService}
}

// Create registers a new group
// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Param request body dto.CreateGroupRequest true "Group details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Router /groups [post]
func (c *GroupController) Create(ctx *gin.Context) {
	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	group, err := c.groupService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Group created successfully",
		"group":   group,
	})
}

// ListByCreator returns groups created by an admin
// @Summary List groups by creator
// @Tags groups
// @Produce json
// @Param adminId path string true "Creator admin identifier"
// @Success 200 {array} models.Group
// @Failure 400 {object} dto.ErrorResponse
// @Router /groups/{adminId} [get]
func (c *GroupController) ListByCreator(ctx *gin.Context) {
	groups, err := c.groupService.ListByCreator(ctx, ctx.Param("adminId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, groups)
}

// ListByTeacher returns groups assigned to a teacher
// @Summary List groups by teacher
// @Tags groups
// @Produce json
// @Param teacherId path string true "Teacher identifier"
// @Success 200 {array} models.Group
// @Failure 400 {object} dto.ErrorResponse
// @Router /teacher/groups/{teacherId} [get]
func (c *GroupController) ListByTeacher(ctx *gin.Context) {
	groups, err := c.groupService.ListByTeacher(ctx, ctx.Param("teacherId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, groups)
}

// Update replaces a group's mutable fields
// @Summary Update a group
// @Tags groups
// @Accept json
// @Produce json
// @Param groupId path string true "Group identifier"
// @Param request body dto.UpdateGroupRequest true "Replacement fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /groups/{groupId} [put]
func (c *GroupController) Update(ctx *gin.Context) {
	var req dto.UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	group, err := c.groupService.Update(ctx, ctx.Param("groupId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Group updated successfully",
		"group":   group,
	})
}
