package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnisphere/backend/internal/app/models"
	"github.com/alumnisphere/backend/internal/app/models/dto"
	"github.com/alumnisphere/backend/internal/app/services"
	"github.com/alumnisphere/backend/internal/middleware"
)

// JobController handles the job board
type JobController struct {
	jobService *services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService *services.JobService) *JobController {
	return &JobController{
		jobService: jobService,
	}
}

// Create posts a new job
// @Summary Post a job
// @Description Creates a new active job posting owned by the caller
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Job fields"
// @Success 201 {object} dto.JobResponse "Job posted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs [post]
func (c *JobController) Create(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid job data"))
		return
	}

	job, err := c.jobService.Create(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.JobResponse{
		Message: "Job posted successfully",
		Job:     job,
	})
}

// ListActive returns all active postings
// @Summary List active jobs
// @Description Returns all active job postings, newest first
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Job "Active jobs"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs [get]
func (c *JobController) ListActive(ctx *gin.Context) {
	jobs, err := c.jobService.ListActive(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, jobs)
}

// ListMine returns the caller's own postings
// @Summary List own jobs
// @Description Returns every posting of the caller, active or not
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Job "Own jobs"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/my-jobs [get]
func (c *JobController) ListMine(ctx *gin.Context) {
	jobs, err := c.jobService.ListMine(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, jobs)
}

// GetByID returns one posting
// @Summary Get a job
// @Description Returns one posting by id regardless of its active flag
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} models.Job "Job"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [get]
func (c *JobController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	job, err := c.jobService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, job)
}

// Update merges changes into an existing posting
// @Summary Update a job
// @Description Updates the supplied fields of an owned posting; omitted fields keep their values
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body dto.UpdateJobRequest true "Fields to change"
// @Success 200 {object} dto.JobResponse "Job updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the poster"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [put]
func (c *JobController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid job data"))
		return
	}

	job, err := c.jobService.Update(ctx.Request.Context(), id, middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JobResponse{
		Message: "Job updated successfully",
		Job:     job,
	})
}

// Delete removes a posting
// @Summary Delete a job
// @Description Deletes a posting. The poster or an admin may delete.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.MessageResponse "Job deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the poster"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [delete]
func (c *JobController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	err := c.jobService.Delete(ctx.Request.Context(), id,
		middleware.CurrentUserID(ctx), models.RoleType(middleware.CurrentRole(ctx)))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Job deleted successfully"})
}
