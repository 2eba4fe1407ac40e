package handlers

import (
	"net/http"

	"yaadjobs_backend/internal/middleware"
	"yaadjobs_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SavedJobHandler struct {
	*BaseHandler
	savedJobService services.SavedJobService
}

func NewSavedJobHandler(base *BaseHandler, savedJobService services.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{
		BaseHandler:     base,
		savedJobService: savedJobService,
	}
}

func (h *SavedJobHandler) RegisterRoutes(r *gin.RouterGroup) {
	saved := r.Group("/saved-jobs")
	saved.Use(middleware.AuthMiddleware())
	{
		saved.GET("", h.List)
		saved.PUT("/:jobId", h.Save)
		saved.DELETE("/:jobId", h.Unsave)
		saved.GET("/:jobId", h.IsSaved)
	}
}

func (h *SavedJobHandler) List(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	saved, err := h.savedJobService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"saved_jobs": saved,
		"total":      len(saved),
	})
}

func (h *SavedJobHandler) Save(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	if err := h.savedJobService.Save(c.Request.Context(), userID, c.Param("jobId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job saved"})
}

func (h *SavedJobHandler) Unsave(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	if err := h.savedJobService.Unsave(c.Request.Context(), userID, c.Param("jobId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job removed from saved"})
}

func (h *SavedJobHandler) IsSaved(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	saved, err := h.savedJobService.IsSaved(c.Request.Context(), userID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}
