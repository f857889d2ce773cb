package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnisphere/backend/internal/app/models/dto"
	"github.com/alumnisphere/backend/internal/app/services"
	"github.com/alumnisphere/backend/internal/middleware"
)

// MentorshipController handles mentorship requests
type MentorshipController struct {
	mentorshipService *services.MentorshipService
}

// NewMentorshipController creates a new MentorshipController
func NewMentorshipController(mentorshipService *services.MentorshipService) *MentorshipController {
	return &MentorshipController{
		mentorshipService: mentorshipService,
	}
}

// Request sends a mentorship request to a mentor
// @Summary Request mentorship
// @Description Sends a mentorship request from the caller to an alumni mentor
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMentorshipRequest true "Request fields"
// @Success 201 {object} dto.MentorshipResponse "Request sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or active request already exists"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship/request [post]
func (c *MentorshipController) Request(ctx *gin.Context) {
	var req dto.CreateMentorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid mentorship request data"))
		return
	}

	m, err := c.mentorshipService.Request(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MentorshipResponse{
		Message:    "Mentorship request sent",
		Mentorship: m,
	})
}

// ListMyRequests returns the requests the caller has sent
// @Summary List own mentorship requests
// @Description Returns the caller's sent requests joined with each mentor, newest first
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Mentorship "Sent requests"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship/my-requests [get]
func (c *MentorshipController) ListMyRequests(ctx *gin.Context) {
	requests, err := c.mentorshipService.ListMyRequests(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, requests)
}

// ListIncoming returns the requests addressed to the caller
// @Summary List incoming mentorship requests
// @Description Returns the requests addressed to the caller joined with each mentee, newest first
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Mentorship "Incoming requests"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship/requests [get]
func (c *MentorshipController) ListIncoming(ctx *gin.Context) {
	requests, err := c.mentorshipService.ListIncoming(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, requests)
}

// UpdateStatus responds to an incoming request
// @Summary Respond to a mentorship request
// @Description Moves a request addressed to the caller to accepted, rejected or completed
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.UpdateMentorshipStatusRequest true "New status"
// @Success 200 {object} dto.MentorshipResponse "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the addressed mentor"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship/{id} [put]
func (c *MentorshipController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMentorshipStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid status data"))
		return
	}

	m, err := c.mentorshipService.UpdateStatus(ctx.Request.Context(), id, middleware.CurrentUserID(ctx), req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MentorshipResponse{
		Message:    "Mentorship request updated",
		Mentorship: m,
	})
}
