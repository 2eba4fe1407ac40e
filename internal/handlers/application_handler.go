package handlers

import (
	"net/http"

	"yaadjobs_backend/internal/middleware"
	"yaadjobs_backend/internal/services"
	"yaadjobs_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	applications := r.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		applications.GET("/my", h.GetMyApplications)
		applications.GET("/:applicationId", h.GetApplication)
		applications.PUT("/:applicationId/status", h.UpdateStatus)
	}
}

func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.MyApplications(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"total":        len(apps),
	})
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	app, err := h.applicationService.Get(c.Request.Context(), c.Param("applicationId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.UpdateStatus(c.Request.Context(), c.Param("applicationId"), userID, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
