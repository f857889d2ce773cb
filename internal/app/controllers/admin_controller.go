package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alumnisphere/backend/internal/app/models/dto"
	"github.com/alumnisphere/backend/internal/app/services"
	"github.com/alumnisphere/backend/internal/middleware"
)

// AdminController handles user administration and alumni approval
type AdminController struct {
	adminService *services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// parseIDParam reads a positive int64 id from the route
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid id"))
		return 0, false
	}
	return id, true
}

// ListUsers returns every account
// @Summary List all users
// @Description Returns every account, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserSummary "All users"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.adminService.ListUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	summaries := make([]dto.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, dto.NewUserSummary(u))
	}

	ctx.JSON(http.StatusOK, summaries)
}

// ApproveAlumni marks a pending alumni account approved
// @Summary Approve an alumni account
// @Description Approves a pending alumni account. Approving twice is a no-op.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.ApprovalResponse "Account approved"
// @Failure 400 {object} dto.ErrorResponse "Not an alumni account"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/approve/{id} [put]
func (c *AdminController) ApproveAlumni(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.adminService.ApproveAlumni(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ApprovalResponse{
		Message: "Alumni approved successfully",
		User:    dto.NewUserSummary(user),
	})
}

// RejectAlumni deletes a pending alumni account
// @Summary Reject an alumni account
// @Description Permanently deletes an alumni account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.MessageResponse "Account removed"
// @Failure 400 {object} dto.ErrorResponse "Not an alumni account"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/reject/{id} [put]
func (c *AdminController) RejectAlumni(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.RejectAlumni(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Alumni rejected and removed"})
}

// GetStats returns the dashboard counters
// @Summary Get platform statistics
// @Description Returns user, alumni, student and pending approval counts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StatsResponse "Platform statistics"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/stats [get]
func (c *AdminController) GetStats(ctx *gin.Context) {
	stats, err := c.adminService.GetStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatsResponse{
		TotalUsers:       stats.TotalUsers,
		TotalAlumni:      stats.TotalAlumni,
		TotalStudents:    stats.TotalStudents,
		PendingApprovals: stats.PendingApprovals,
	})
}
