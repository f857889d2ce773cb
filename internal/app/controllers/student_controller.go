package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnisphere/backend/internal/app/models/dto"
	"github.com/alumnisphere/backend/internal/app/services"
	"github.com/alumnisphere/backend/internal/middleware"
)

// StudentController handles student profiles
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// UpsertProfile creates or fully replaces the caller's profile
// @Summary Create or update own student profile
// @Description Creates the caller's profile on first submission and overwrites it on resubmission
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpsertStudentProfileRequest true "Profile fields"
// @Success 200 {object} dto.StudentProfileResponse "Profile saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/profile [post]
func (c *StudentController) UpsertProfile(ctx *gin.Context) {
	var req dto.UpsertStudentProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid profile data"))
		return
	}

	profile, err := c.studentService.UpsertProfile(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentProfileResponse{
		Message: "Profile saved successfully",
		Profile: profile,
	})
}

// GetMyProfile returns the caller's own profile
// @Summary Get own student profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.StudentProfile "Own profile"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/profile/me [get]
func (c *StudentController) GetMyProfile(ctx *gin.Context) {
	profile, err := c.studentService.GetMyProfile(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// ListAll returns every student profile
// @Summary List all student profiles
// @Description Returns every student profile, most recent enrollment years first
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.StudentProfile "Student profiles"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student [get]
func (c *StudentController) ListAll(ctx *gin.Context) {
	profiles, err := c.studentService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profiles)
}
