package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandan/studenthub/internal/app/models/dto"
	"github.com/nandan/studenthub/internal/app/services"
	"github.com/nandan/studenthub/internal/middleware"
)

// MessageController handles group broadcast messaging endpoints
type MessageController struct {
	messageService *services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService *services.MessageService) *MessageController {
	return &MessageController{messageService: messageService}
}

// Send broadcasts a message to a group
// @Summary Send a message to a group
// @Description Snapshots the group membership into a recipient list at send time.
// @Tags messages
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} dto.SendMessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /messages/send [post]
func (c *MessageController) Send(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	message, err := c.messageService.Send(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SendMessageResponse{
		Message:        "Message sent successfully",
		MessageID:      message.MessageID,
		RecipientCount: len(message.Recipients),
	})
}

// ListForStudent returns a student's inbox
// @Summary List a student's messages
// @Tags messages
// @Produce json
// @Param studentId path string true "Student identifier"
// @Success 200 {array} dto.StudentMessageView
// @Failure 400 {object} dto.ErrorResponse
// @Router /messages/student/{studentId} [get]
func (c *MessageController) ListForStudent(ctx *gin.Context) {
	messages, err := c.messageService.ListForStudent(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, messages)
}

// MarkRead flags a student's copy of a message as read
// @Summary Mark a message as read
// @Tags messages
// @Produce json
// @Param messageId path string true "Message identifier"
// @Param studentId path string true "Student identifier"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /messages/{messageId}/read/{studentId} [put]
func (c *MessageController) MarkRead(ctx *gin.Context) {
	err := c.messageService.MarkRead(ctx, ctx.Param("messageId"), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Message marked as read"})
}

// UnreadCount returns a student's unread message count
// @Summary Get a student's unread message count
// @Tags messages
// @Produce json
// @Param studentId path string true "Student identifier"
// @Success 200 {object} dto.UnreadCountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /messages/unread-count/{studentId} [get]
func (c *MessageController) UnreadCount(ctx *gin.Context) {
	count, err := c.messageService.UnreadCount(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.UnreadCountResponse{UnreadCount: count})
}
