package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumconnect/backend/internal/app/controllers"
	"github.com/alumconnect/backend/internal/app/models"
	"github.com/alumconnect/backend/internal/middleware"
	"github.com/alumconnect/backend/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	projectController *controllers.ProjectController,
	applicationController *controllers.ApplicationController,
	mentorshipController *controllers.MentorshipController,
	blogController *controllers.BlogController,
	chatController *controllers.ChatController,
	uploadController *controllers.UploadController,
	wsHandler *websocket.Handler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Public browse routes, annotated for authenticated callers ---
	public := v1.Group("")
	public.Use(authMiddleware.OptionalJWTAuth())
	{
		public.GET("/projects", projectController.List)
		public.GET("/projects/:id", projectController.Get)
		public.GET("/blog", blogController.List)
		public.GET("/blog/:id", blogController.Get)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Profile
		authenticated.GET("/profile", userController.GetProfile)
		authenticated.PUT("/profile", userController.UpdateProfile)
		authenticated.PUT("/profile/availability", userController.SetAvailability)
		authenticated.GET("/users/:id", userController.GetUser)
		authenticated.GET("/alumni", userController.ListAlumni)

		// Uploads tied to the caller
		authenticated.POST("/uploads/avatar", uploadController.UploadAvatar)
		authenticated.POST("/uploads/cv", uploadController.UploadCV)

		// Projects
		projects := authenticated.Group("/projects")
		{
			projects.GET("/recommended", authMiddleware.RoleRequired(models.RoleStudent), projectController.Recommended)
			projects.POST("/:id/apply", authMiddleware.RoleRequired(models.RoleStudent), applicationController.Apply)
			projects.DELETE("/:id/apply", authMiddleware.RoleRequired(models.RoleStudent), applicationController.Withdraw)
			projects.GET("/:id/applications", applicationController.ListForProject)

			alumniOnly := projects.Group("")
			alumniOnly.Use(authMiddleware.RoleRequired(models.RoleAlumni))
			{
				alumniOnly.POST("", projectController.Create)
				alumniOnly.PUT("/:id", projectController.Update)
				alumniOnly.DELETE("/:id", projectController.Delete)
				alumniOnly.POST("/:id/images", uploadController.UploadProjectImage)
				alumniOnly.POST("/:id/documents", uploadController.UploadProjectDocument)
			}
		}

		// Applications
		applications := authenticated.Group("/applications")
		{
			applications.GET("", applicationController.ListMine)
			applications.PUT("/:id/accept", applicationController.Accept)
			applications.PUT("/:id/decline", applicationController.Decline)
			applications.PUT("/:id/complete", applicationController.Complete)
		}

		// Mentorship
		mentorship := authenticated.Group("/mentorship/requests")
		{
			mentorship.POST("", authMiddleware.RoleRequired(models.RoleStudent), mentorshipController.Request)
			mentorship.GET("", mentorshipController.ListMine)
			mentorship.PUT("/:id/accept", authMiddleware.RoleRequired(models.RoleAlumni), mentorshipController.Accept)
			mentorship.PUT("/:id/decline", authMiddleware.RoleRequired(models.RoleAlumni), mentorshipController.Decline)
		}

		// Blog
		blog := authenticated.Group("/blog")
		{
			blog.POST("/:id/like", blogController.ToggleLike)

			blogAlumni := blog.Group("")
			blogAlumni.Use(authMiddleware.RoleRequired(models.RoleAlumni))
			{
				blogAlumni.POST("", blogController.Create)
				blogAlumni.PUT("/:id", blogController.Update)
				blogAlumni.DELETE("/:id", blogController.Delete)
				blogAlumni.POST("/:id/images", uploadController.UploadBlogImage)
				blogAlumni.POST("/:id/pdfs", uploadController.UploadBlogPDF)
			}
		}

		// Chat
		conversations := authenticated.Group("/conversations")
		{
			conversations.POST("", chatController.StartConversation)
			conversations.GET("", chatController.ListConversations)
			conversations.GET("/:id/messages", chatController.GetMessages)
			conversations.POST("/:id/messages", chatController.SendMessage)
			conversations.GET("/:id/ws", wsHandler.HandleConnection)
		}
	}
}
