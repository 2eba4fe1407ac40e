package handlers

import (
	"net/http"

	"yaadjobs_backend/internal/middleware"
	"yaadjobs_backend/internal/models"
	"yaadjobs_backend/internal/services"
	"yaadjobs_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService         services.JobService
	applicationService services.ApplicationService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, applicationService services.ApplicationService) *JobHandler {
	return &JobHandler{
		BaseHandler:        base,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	public := r.Group("/jobs")
	{
		public.GET("", h.SearchJobs)
		public.GET("/featured", h.GetFeaturedJobs)
		public.GET("/:jobId", h.GetJob)
	}

	// Business routes
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleBusiness, models.UserRoleAdmin))
	{
		jobs.POST("", h.CreateJob)
		jobs.GET("/my", h.GetMyJobs)
		jobs.PUT("/:jobId", h.UpdateJob)
		jobs.DELETE("/:jobId", h.CloseJob)
		jobs.GET("/:jobId/applications", h.GetJobApplications)
		jobs.GET("/:jobId/applications/count", h.GetApplicationCount)
	}

	// Seeker routes
	apply := r.Group("/jobs")
	apply.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleJobSeeker, models.UserRoleFreelancer))
	{
		apply.POST("/:jobId/applications", h.SubmitApplication)
	}
}

// --- Public handlers ---

func (h *JobHandler) SearchJobs(c *gin.Context) {
	var criteria dto.SearchJobsRequest
	if !h.BindAndValidateQuery(c, &criteria) {
		return
	}
	page, pageSize := ParsePagination(c)

	jobs, total, err := h.jobService.Search(c.Request.Context(), criteria, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	pages := (total + int64(pageSize) - 1) / int64(pageSize)
	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": total,
		"page":  page,
		"pages": pages,
	})
}

func (h *JobHandler) GetFeaturedJobs(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 3)
	jobs, err := h.jobService.Featured(c.Request.Context(), limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

func (h *JobHandler) GetJob(c *gin.Context) {
	requesterID := middleware.GetUserID(c)
	job, err := h.jobService.Get(c.Request.Context(), c.Param("jobId"), requesterID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// --- Business handlers ---

func (h *JobHandler) CreateJob(c *gin.Context) {
	businessID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), businessID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) GetMyJobs(c *gin.Context) {
	businessID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.MyJobs(c.Request.Context(), businessID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	businessID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(c.Request.Context(), c.Param("jobId"), businessID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) CloseJob(c *gin.Context) {
	businessID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.Close(c.Request.Context(), c.Param("jobId"), businessID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job listing closed"})
}

func (h *JobHandler) GetJobApplications(c *gin.Context) {
	businessID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ForJob(c.Request.Context(), c.Param("jobId"), businessID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"total":        len(apps),
	})
}

func (h *JobHandler) GetApplicationCount(c *gin.Context) {
	count, err := h.jobService.ApplicationCount(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// --- Seeker handlers ---

func (h *JobHandler) SubmitApplication(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.Submit(c.Request.Context(), c.Param("jobId"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}
