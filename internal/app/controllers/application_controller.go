package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumconnect/backend/internal/app/models/dto"
	"github.com/alumconnect/backend/internal/app/services"
	"github.com/alumconnect/backend/internal/middleware"
)

// ApplicationController handles application operations
type ApplicationController struct {
	applicationService *services.ApplicationService
	logger             zerolog.Logger
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService, logger zerolog.Logger) *ApplicationController {
	return &ApplicationController{applicationService: applicationService, logger: logger}
}

// Apply submits an application to a project
// @Summary Apply to a project
// @Description Students apply to a position of a recruiting project. Projects without positions accept general applications.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body dto.ApplyRequest true "Application payload"
// @Success 201 {object} dto.APIResponse{data=models.ProjectApplication}
// @Failure 403 {object} dto.ErrorResponse "Caller is not a student"
// @Failure 409 {object} dto.ErrorResponse "Already applied or position closed"
// @Router /projects/{id}/apply [post]
func (c *ApplicationController) Apply(ctx *gin.Context) {
	projectID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	app, err := c.applicationService.Apply(ctx.Request.Context(), middleware.CurrentUserID(ctx), middleware.CurrentRole(ctx), projectID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(app))
}

// ListMine lists the caller's applications
// @Summary List own applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ApplicationResponse}
// @Router /applications [get]
func (c *ApplicationController) ListMine(ctx *gin.Context) {
	apps, err := c.applicationService.ListMine(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(apps))
}

// ListForProject lists a project's applications
// @Summary List a project's applications
// @Description Lists applications with applicant details. Project owner only.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ApplicationResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Router /projects/{id}/applications [get]
func (c *ApplicationController) ListForProject(ctx *gin.Context) {
	projectID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	apps, err := c.applicationService.ListForProject(ctx.Request.Context(), projectID, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(apps))
}

// Accept accepts an application
// @Summary Accept an application
// @Description Accepts an application and fills a position slot. The position deactivates once full. Project owner only.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=models.ProjectApplication}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /applications/{id}/accept [put]
func (c *ApplicationController) Accept(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	app, err := c.applicationService.Accept(ctx.Request.Context(), id, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(app))
}

// Decline declines an application
// @Summary Decline an application
// @Description Declines an application. Declining a previously accepted one frees its position slot. Project owner only.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=models.ProjectApplication}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /applications/{id}/decline [put]
func (c *ApplicationController) Decline(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	app, err := c.applicationService.Decline(ctx.Request.Context(), id, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(app))
}

// Withdraw removes the caller's applications to a project
// @Summary Withdraw from a project
// @Description Removes the caller's applications to the project. Withdrawing an accepted one frees its position slot.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 404 {object} dto.ErrorResponse "No application for this project"
// @Router /projects/{id}/apply [delete]
func (c *ApplicationController) Withdraw(ctx *gin.Context) {
	projectID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.applicationService.Withdraw(ctx.Request.Context(), projectID, middleware.CurrentUserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Application withdrawn"}))
}

// Complete marks an accepted application completed
// @Summary Complete an application
// @Description Marks an accepted application as completed, with optional feedback. Project owner only.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.CompleteApplicationRequest true "Completion feedback"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Application is not in the accepted state"
// @Router /applications/{id}/complete [put]
func (c *ApplicationController) Complete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.CompleteApplicationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.applicationService.Complete(ctx.Request.Context(), id, middleware.CurrentUserID(ctx), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Application completed"}))
}
