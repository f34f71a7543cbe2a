package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumconnect/backend/internal/app/models/dto"
	"github.com/alumconnect/backend/internal/app/repositories"
	"github.com/alumconnect/backend/internal/app/services"
	"github.com/alumconnect/backend/internal/middleware"
	"github.com/alumconnect/backend/internal/pkg/filestorage"
)

// UploadResponse carries the stored file's accessible path
type UploadResponse struct {
	URL string `json:"url" example:"/uploads/avatars/9f1c0a57.png"`
}

// UploadController handles file uploads
type UploadController struct {
	storage        filestorage.FileStorage
	userRepo       *repositories.UserRepository
	projectService *services.ProjectService
	blogService    *services.BlogService
	logger         zerolog.Logger
}

// NewUploadController creates a new UploadController
func NewUploadController(
	storage filestorage.FileStorage,
	userRepo *repositories.UserRepository,
	projectService *services.ProjectService,
	blogService *services.BlogService,
	logger zerolog.Logger,
) *UploadController {
	return &UploadController{
		storage:        storage,
		userRepo:       userRepo,
		projectService: projectService,
		blogService:    blogService,
		logger:         logger,
	}
}

func (c *UploadController) saveUpload(ctx *gin.Context, field, subPath string, allowed []string) (string, bool) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Missing file in '"+field+"' form field")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return "", false
	}

	if err := filestorage.CheckExtension(fileHeader, allowed); err != nil {
		middleware.HandleAPIError(ctx, err)
		return "", false
	}

	url, err := c.storage.SaveFile(fileHeader, subPath)
	if err != nil {
		c.logger.Error().Err(err).Str("subPath", subPath).Msg("Failed to store upload")
		middleware.HandleAPIError(ctx, err)
		return "", false
	}
	return url, true
}

// UploadAvatar stores the caller's profile picture
// @Summary Upload an avatar
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file (jpg, jpeg, png, gif)"
// @Success 200 {object} dto.APIResponse{data=controllers.UploadResponse}
// @Failure 400 {object} dto.ErrorResponse "Unsupported file type"
// @Router /uploads/avatar [post]
func (c *UploadController) UploadAvatar(ctx *gin.Context) {
	url, ok := c.saveUpload(ctx, "file", "avatars", filestorage.ImageExtensions)
	if !ok {
		return
	}

	if err := c.userRepo.SetAvatarURL(ctx.Request.Context(), middleware.CurrentUserID(ctx), url); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(UploadResponse{URL: url}))
}

// UploadCV stores the caller's CV
// @Summary Upload a CV
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "PDF file"
// @Success 200 {object} dto.APIResponse{data=controllers.UploadResponse}
// @Failure 400 {object} dto.ErrorResponse "Unsupported file type"
// @Router /uploads/cv [post]
func (c *UploadController) UploadCV(ctx *gin.Context) {
	url, ok := c.saveUpload(ctx, "file", "cvs", filestorage.DocumentExtensions)
	if !ok {
		return
	}

	if err := c.userRepo.SetCVURL(ctx.Request.Context(), middleware.CurrentUserID(ctx), url); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(UploadResponse{URL: url}))
}

// UploadProjectImage attaches an image to a project
// @Summary Upload a project image
// @Description Stores an image and appends it to the project's image list. Project owner only.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param file formData file true "Image file (jpg, jpeg, png, gif)"
// @Success 200 {object} dto.APIResponse{data=controllers.UploadResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Router /projects/{id}/images [post]
func (c *UploadController) UploadProjectImage(ctx *gin.Context) {
	projectID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	url, ok := c.saveUpload(ctx, "file", fmt.Sprintf("projects/%d/images", projectID), filestorage.ImageExtensions)
	if !ok {
		return
	}

	if err := c.projectService.AddImage(ctx.Request.Context(), projectID, middleware.CurrentUserID(ctx), url); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(UploadResponse{URL: url}))
}

// UploadProjectDocument attaches the job description document to a project
// @Summary Upload a project job description
// @Description Stores a PDF as the project's job description file. Project owner only.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param file formData file true "PDF file"
// @Success 200 {object} dto.APIResponse{data=controllers.UploadResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Router /projects/{id}/documents [post]
func (c *UploadController) UploadProjectDocument(ctx *gin.Context) {
	projectID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	url, ok := c.saveUpload(ctx, "file", fmt.Sprintf("projects/%d/documents", projectID), filestorage.DocumentExtensions)
	if !ok {
		return
	}

	if err := c.projectService.SetJDFile(ctx.Request.Context(), projectID, middleware.CurrentUserID(ctx), url); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(UploadResponse{URL: url}))
}

// UploadBlogImage attaches an image to a blog post
// @Summary Upload a blog image
// @Description Stores an image and appends it to the post's image list. Author only.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param file formData file true "Image file (jpg, jpeg, png, gif)"
// @Success 200 {object} dto.APIResponse{data=controllers.UploadResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Router /blog/{id}/images [post]
func (c *UploadController) UploadBlogImage(ctx *gin.Context) {
	postID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	url, ok := c.saveUpload(ctx, "file", fmt.Sprintf("blog/%d/images", postID), filestorage.ImageExtensions)
	if !ok {
		return
	}

	if err := c.blogService.AddImage(ctx.Request.Context(), postID, middleware.CurrentUserID(ctx), url); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(UploadResponse{URL: url}))
}

// UploadBlogPDF attaches a document to a blog post
// @Summary Upload a blog document
// @Description Stores a PDF and appends it to the post's document list. Author only.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param file formData file true "PDF file"
// @Success 200 {object} dto.APIResponse{data=controllers.UploadResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Router /blog/{id}/pdfs [post]
func (c *UploadController) UploadBlogPDF(ctx *gin.Context) {
	postID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	url, ok := c.saveUpload(ctx, "file", fmt.Sprintf("blog/%d/pdfs", postID), filestorage.DocumentExtensions)
	if !ok {
		return
	}

	if err := c.blogService.AddPDF(ctx.Request.Context(), postID, middleware.CurrentUserID(ctx), url); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(UploadResponse{URL: url}))
}
