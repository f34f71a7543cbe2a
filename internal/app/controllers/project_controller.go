package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumconnect/backend/internal/app/models/dto"
	"github.com/alumconnect/backend/internal/app/services"
	"github.com/alumconnect/backend/internal/middleware"
)

// ProjectController handles project operations
type ProjectController struct {
	projectService *services.ProjectService
	logger         zerolog.Logger
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService *services.ProjectService, logger zerolog.Logger) *ProjectController {
	return &ProjectController{projectService: projectService, logger: logger}
}

// Create creates a project
// @Summary Create a project
// @Description Creates a project with its initial positions. Alumni only.
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProjectRequest true "Project payload"
// @Success 201 {object} dto.APIResponse{data=models.Project}
// @Failure 403 {object} dto.ErrorResponse "Caller is not an alumni"
// @Router /projects [post]
func (c *ProjectController) Create(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if !bindJSON(ctx, &req) {
		return
	}

	project, err := c.projectService.Create(ctx.Request.Context(), middleware.CurrentUserID(ctx), middleware.CurrentRole(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(project))
}

// List lists projects
// @Summary List projects
// @Description Lists projects newest first. Authenticated callers see their application state per project.
// @Tags projects
// @Produce json
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by status" Enums(active, completed, paused)
// @Param available query bool false "Hide projects the caller already applied to"
// @Success 200 {object} dto.APIResponse{data=[]dto.ProjectResponse}
// @Router /projects [get]
func (c *ProjectController) List(ctx *gin.Context) {
	filter := &dto.ProjectFilter{
		AvailableOnly: ctx.Query("available") == "true",
	}
	if v := ctx.Query("category"); v != "" {
		filter.Category = &v
	}
	if v := ctx.Query("status"); v != "" {
		filter.Status = &v
	}

	projects, err := c.projectService.List(ctx.Request.Context(), filter, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(projects))
}

// Get returns a single project
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=dto.ProjectResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /projects/{id} [get]
func (c *ProjectController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	project, err := c.projectService.Get(ctx.Request.Context(), id, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(project))
}

// Update updates a project
// @Summary Update a project
// @Description Applies a partial update. Positions with an id are updated in place; positions without one are added. Owner only.
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Project}
// @Failure 403 {object} dto.ErrorResponse "Caller does not own the project"
// @Failure 404 {object} dto.ErrorResponse
// @Router /projects/{id} [put]
func (c *ProjectController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if !bindJSON(ctx, &req) {
		return
	}

	project, err := c.projectService.Update(ctx.Request.Context(), id, middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(project))
}

// Delete removes a project
// @Summary Delete a project
// @Description Removes a project together with its positions and applications. Owner only.
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /projects/{id} [delete]
func (c *ProjectController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.projectService.Delete(ctx.Request.Context(), id, middleware.CurrentUserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Project deleted"}))
}

// Recommended returns projects ranked for the caller
// @Summary Recommended projects
// @Description Ranks active projects against the student's skills and profile. Falls back to the most recent projects when nothing matches.
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.RecommendedProject}
// @Router /projects/recommended [get]
func (c *ProjectController) Recommended(ctx *gin.Context) {
	projects, err := c.projectService.Recommended(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(projects))
}
