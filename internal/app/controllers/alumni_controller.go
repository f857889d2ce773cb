package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnisphere/backend/internal/app/models/dto"
	"github.com/alumnisphere/backend/internal/app/services"
	"github.com/alumnisphere/backend/internal/middleware"
)

// AlumniController handles alumni profiles and the public directory
type AlumniController struct {
	alumniService *services.AlumniService
}

// NewAlumniController creates a new AlumniController
func NewAlumniController(alumniService *services.AlumniService) *AlumniController {
	return &AlumniController{
		alumniService: alumniService,
	}
}

// UpsertProfile creates or fully replaces the caller's profile
// @Summary Create or update own alumni profile
// @Description Creates the caller's profile on first submission and overwrites it on resubmission
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpsertAlumniProfileRequest true "Profile fields"
// @Success 200 {object} dto.AlumniProfileResponse "Profile saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumni/profile [post]
func (c *AlumniController) UpsertProfile(ctx *gin.Context) {
	var req dto.UpsertAlumniProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid profile data"))
		return
	}

	profile, err := c.alumniService.UpsertProfile(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AlumniProfileResponse{
		Message: "Profile saved successfully",
		Profile: profile,
	})
}

// GetMyProfile returns the caller's own profile
// @Summary Get own alumni profile
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AlumniProfile "Own profile"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumni/profile/me [get]
func (c *AlumniController) GetMyProfile(ctx *gin.Context) {
	profile, err := c.alumniService.GetMyProfile(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// ListApproved returns the directory of approved alumni
// @Summary List approved alumni
// @Description Returns profiles of approved alumni only, most recent graduates first
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AlumniProfile "Approved alumni profiles"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumni [get]
func (c *AlumniController) ListApproved(ctx *gin.Context) {
	profiles, err := c.alumniService.ListApproved(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profiles)
}

// GetByID returns one profile by its id
// @Summary Get an alumni profile
// @Description Returns one profile by its id regardless of the owner's approval state
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Success 200 {object} models.AlumniProfile "Profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumni/{id} [get]
func (c *AlumniController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	profile, err := c.alumniService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
