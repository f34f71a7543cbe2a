package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumconnect/backend/internal/app/models/dto"
	"github.com/alumconnect/backend/internal/app/services"
	"github.com/alumconnect/backend/internal/middleware"
	"github.com/alumconnect/backend/internal/pkg/websocket"
)

// ChatController handles conversation and message operations
type ChatController struct {
	chatService *services.ChatService
	hub         *websocket.Hub
	logger      zerolog.Logger
}

// NewChatController creates a new ChatController
func NewChatController(chatService *services.ChatService, hub *websocket.Hub, logger zerolog.Logger) *ChatController {
	return &ChatController{chatService: chatService, hub: hub, logger: logger}
}

// StartConversation opens (or returns) a conversation
// @Summary Start a conversation
// @Description Opens a conversation with another user, returning the existing one if the pair already talked.
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StartConversationRequest true "Other participant"
// @Success 201 {object} dto.APIResponse{data=models.Conversation}
// @Failure 404 {object} dto.ErrorResponse "Other user not found"
// @Router /conversations [post]
func (c *ChatController) StartConversation(ctx *gin.Context) {
	var req dto.StartConversationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	conv, err := c.chatService.StartConversation(ctx.Request.Context(), middleware.CurrentUserID(ctx), req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(conv))
}

// ListConversations lists the caller's conversations
// @Summary List conversations
// @Description Lists the caller's conversations by recent activity with unread counts.
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Conversation}
// @Router /conversations [get]
func (c *ChatController) ListConversations(ctx *gin.Context) {
	conversations, err := c.chatService.ListConversations(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(conversations))
}

// GetMessages returns a conversation's history
// @Summary Get conversation messages
// @Description Returns messages oldest first and marks those addressed to the caller as read.
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path int true "Conversation ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Message}
// @Failure 403 {object} dto.ErrorResponse "Caller is not a participant"
// @Failure 404 {object} dto.ErrorResponse
// @Router /conversations/{id}/messages [get]
func (c *ChatController) GetMessages(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	messages, err := c.chatService.GetMessages(ctx.Request.Context(), id, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(messages))
}

// SendMessage delivers a message into a conversation
// @Summary Send a message
// @Description Sends a message and pushes it to any connected websocket clients.
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Conversation ID"
// @Param request body dto.SendMessageRequest true "Message content"
// @Success 201 {object} dto.APIResponse{data=models.Message}
// @Failure 403 {object} dto.ErrorResponse "Caller is not a participant"
// @Failure 404 {object} dto.ErrorResponse
// @Router /conversations/{id}/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !bindJSON(ctx, &req) {
		return
	}

	msg, err := c.chatService.SendMessage(ctx.Request.Context(), id, middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// push to live clients, best effort
	c.hub.BroadcastToConversation(&websocket.Event{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		Content:        msg.Content,
		Timestamp:      msg.CreatedAt,
	})

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(msg))
}
