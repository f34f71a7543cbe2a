package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumconnect/backend/internal/app/models/dto"
	"github.com/alumconnect/backend/internal/app/services"
	"github.com/alumconnect/backend/internal/middleware"
)

// MentorshipController handles mentorship request operations
type MentorshipController struct {
	mentorshipService *services.MentorshipService
	logger            zerolog.Logger
}

// NewMentorshipController creates a new MentorshipController
func NewMentorshipController(mentorshipService *services.MentorshipService, logger zerolog.Logger) *MentorshipController {
	return &MentorshipController{mentorshipService: mentorshipService, logger: logger}
}

// Request sends a mentorship request
// @Summary Request mentorship
// @Description Students send a mentorship request to an alumni. One request per alumni.
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MentorshipRequestPayload true "Request payload"
// @Success 201 {object} dto.APIResponse{data=models.MentorshipRequest}
// @Failure 403 {object} dto.ErrorResponse "Caller is not a student"
// @Failure 409 {object} dto.ErrorResponse "Request already sent"
// @Router /mentorship/requests [post]
func (c *MentorshipController) Request(ctx *gin.Context) {
	var req dto.MentorshipRequestPayload
	if !bindJSON(ctx, &req) {
		return
	}

	request, err := c.mentorshipService.Request(ctx.Request.Context(), middleware.CurrentUserID(ctx), middleware.CurrentRole(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(request))
}

// ListMine lists the caller's mentorship requests
// @Summary List mentorship requests
// @Description Students see their outgoing requests; alumni see incoming ones.
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MentorshipRequestResponse}
// @Router /mentorship/requests [get]
func (c *MentorshipController) ListMine(ctx *gin.Context) {
	requests, err := c.mentorshipService.ListMine(ctx.Request.Context(), middleware.CurrentUserID(ctx), middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests))
}

// Accept accepts a mentorship request
// @Summary Accept a mentorship request
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 404 {object} dto.ErrorResponse "Request not found or not addressed to the caller"
// @Router /mentorship/requests/{id}/accept [put]
func (c *MentorshipController) Accept(ctx *gin.Context) {
	c.respond(ctx, true)
}

// Decline declines a mentorship request
// @Summary Decline a mentorship request
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 404 {object} dto.ErrorResponse "Request not found or not addressed to the caller"
// @Router /mentorship/requests/{id}/decline [put]
func (c *MentorshipController) Decline(ctx *gin.Context) {
	c.respond(ctx, false)
}

func (c *MentorshipController) respond(ctx *gin.Context, accept bool) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.mentorshipService.Respond(ctx.Request.Context(), id, middleware.CurrentUserID(ctx), accept); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Mentorship request declined"
	if accept {
		message = "Mentorship request accepted"
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: message}))
}
