package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnisphere/backend/internal/app/controllers"
	"github.com/alumnisphere/backend/internal/app/models"
	"github.com/alumnisphere/backend/internal/app/models/dto"
	"github.com/alumnisphere/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	alumniController *controllers.AlumniController,
	studentController *controllers.StudentController,
	jobController *controllers.JobController,
	eventController *controllers.EventController,
	mentorshipController *controllers.MentorshipController,
	authMiddleware *middleware.AuthMiddleware,
) {
	student := string(models.RoleStudent)
	alumni := string(models.RoleAlumni)
	admin := string(models.RoleAdmin)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "AlumniSphere API is running",
			"version": "1.0.0",
			"status":  "ok",
		})
	})

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		adminRoutes := authenticated.Group("/admin")
		adminRoutes.Use(authMiddleware.RoleRequired(admin))
		{
			adminRoutes.GET("/users", adminController.ListUsers)
			adminRoutes.PUT("/approve/:id", adminController.ApproveAlumni)
			adminRoutes.PUT("/reject/:id", adminController.RejectAlumni)
			adminRoutes.GET("/stats", adminController.GetStats)
		}

		alumniRoutes := authenticated.Group("/alumni")
		{
			// Directory is visible to any authenticated role
			alumniRoutes.GET("", alumniController.ListApproved)

			alumniOnly := alumniRoutes.Group("")
			alumniOnly.Use(authMiddleware.RoleRequired(alumni))
			{
				alumniOnly.POST("/profile", alumniController.UpsertProfile)
				alumniOnly.GET("/profile/me", alumniController.GetMyProfile)
			}

			alumniRoutes.GET("/:id", alumniController.GetByID)
		}

		studentRoutes := authenticated.Group("/student")
		{
			studentOnly := studentRoutes.Group("")
			studentOnly.Use(authMiddleware.RoleRequired(student))
			{
				studentOnly.POST("/profile", studentController.UpsertProfile)
				studentOnly.GET("/profile/me", studentController.GetMyProfile)
			}

			studentAdmin := studentRoutes.Group("")
			studentAdmin.Use(authMiddleware.RoleRequired(admin))
			{
				studentAdmin.GET("", studentController.ListAll)
			}
		}

		jobRoutes := authenticated.Group("/jobs")
		{
			jobRoutes.GET("", jobController.ListActive)

			jobAlumni := jobRoutes.Group("")
			jobAlumni.Use(authMiddleware.RoleRequired(alumni))
			{
				jobAlumni.POST("", jobController.Create)
				jobAlumni.GET("/my-jobs", jobController.ListMine)
			}

			jobRoutes.GET("/:id", jobController.GetByID)

			jobWrite := jobRoutes.Group("")
			jobWrite.Use(authMiddleware.RoleRequired(alumni, admin))
			{
				jobWrite.PUT("/:id", jobController.Update)
				jobWrite.DELETE("/:id", jobController.Delete)
			}
		}

		eventRoutes := authenticated.Group("/events")
		{
			eventRoutes.GET("", eventController.ListActive)
			eventRoutes.GET("/:id", eventController.GetByID)

			eventAdmin := eventRoutes.Group("")
			eventAdmin.Use(authMiddleware.RoleRequired(admin))
			{
				eventAdmin.POST("", eventController.Create)
				eventAdmin.PUT("/:id", eventController.Update)
				eventAdmin.DELETE("/:id", eventController.Delete)
			}
		}

		mentorshipRoutes := authenticated.Group("/mentorship")
		{
			mentorshipStudent := mentorshipRoutes.Group("")
			mentorshipStudent.Use(authMiddleware.RoleRequired(student))
			{
				mentorshipStudent.POST("/request", mentorshipController.Request)
				mentorshipStudent.GET("/my-requests", mentorshipController.ListMyRequests)
			}

			mentorshipAlumni := mentorshipRoutes.Group("")
			mentorshipAlumni.Use(authMiddleware.RoleRequired(alumni))
			{
				mentorshipAlumni.GET("/requests", mentorshipController.ListIncoming)
				mentorshipAlumni.PUT("/:id", mentorshipController.UpdateStatus)
			}
		}
	}

	// Catch-all for unknown paths
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Route not found"))
	})
}
