package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumconnect/backend/internal/app/models/dto"
	"github.com/alumconnect/backend/internal/app/services"
	"github.com/alumconnect/backend/internal/middleware"
)

// BlogController handles blog post operations
type BlogController struct {
	blogService *services.BlogService
	logger      zerolog.Logger
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService *services.BlogService, logger zerolog.Logger) *BlogController {
	return &BlogController{blogService: blogService, logger: logger}
}

// Create publishes a blog post
// @Summary Publish a blog post
// @Description Alumni publish a blog post.
// @Tags blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBlogPostRequest true "Post payload"
// @Success 201 {object} dto.APIResponse{data=models.BlogPost}
// @Failure 403 {object} dto.ErrorResponse "Caller is not an alumni"
// @Router /blog [post]
func (c *BlogController) Create(ctx *gin.Context) {
	var req dto.CreateBlogPostRequest
	if !bindJSON(ctx, &req) {
		return
	}

	post, err := c.blogService.Create(ctx.Request.Context(), middleware.CurrentUserID(ctx), middleware.CurrentRole(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(post))
}

// List lists blog posts
// @Summary List blog posts
// @Tags blog
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} dto.APIResponse{data=[]models.BlogPost}
// @Router /blog [get]
func (c *BlogController) List(ctx *gin.Context) {
	var category *string
	if v := ctx.Query("category"); v != "" {
		category = &v
	}

	posts, err := c.blogService.List(ctx.Request.Context(), category, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(posts))
}

// Get returns a single blog post
// @Summary Get a blog post
// @Tags blog
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=models.BlogPost}
// @Failure 404 {object} dto.ErrorResponse
// @Router /blog/{id} [get]
func (c *BlogController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	post, err := c.blogService.Get(ctx.Request.Context(), id, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// Update updates a blog post
// @Summary Update a blog post
// @Description Applies a partial update to the caller's own post.
// @Tags blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.UpdateBlogPostRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.BlogPost}
// @Failure 404 {object} dto.ErrorResponse
// @Router /blog/{id} [put]
func (c *BlogController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBlogPostRequest
	if !bindJSON(ctx, &req) {
		return
	}

	post, err := c.blogService.Update(ctx.Request.Context(), id, middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// Delete removes a blog post
// @Summary Delete a blog post
// @Tags blog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /blog/{id} [delete]
func (c *BlogController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.blogService.Delete(ctx.Request.Context(), id, middleware.CurrentUserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Blog post deleted"}))
}

// ToggleLike flips the caller's like on a post
// @Summary Like or unlike a blog post
// @Description Toggles the caller's like and returns the new state with the updated count.
// @Tags blog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.LikeResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /blog/{id}/like [post]
func (c *BlogController) ToggleLike(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.blogService.ToggleLike(ctx.Request.Context(), id, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
