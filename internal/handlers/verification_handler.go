package handlers

import (
	"net/http"

	"yaadjobs_backend/internal/middleware"
	"yaadjobs_backend/internal/models"
	"yaadjobs_backend/internal/services"
	"yaadjobs_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type VerificationHandler struct {
	*BaseHandler
	verificationService services.VerificationService
}

func NewVerificationHandler(base *BaseHandler, verificationService services.VerificationService) *VerificationHandler {
	return &VerificationHandler{
		BaseHandler:         base,
		verificationService: verificationService,
	}
}

func (h *VerificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	verifications := r.Group("/verifications")
	verifications.Use(middleware.AuthMiddleware())
	{
		// Business side
		verifications.POST("", middleware.RequireRoles(models.UserRoleBusiness, models.UserRoleFreelancer), h.Submit)
		verifications.GET("/status", h.Status)

		// Staff side
		staff := verifications.Group("")
		staff.Use(middleware.RequireStaff())
		{
			staff.GET("/pending", h.ListPending)
			staff.PUT("/:requestId/approve", h.Approve)
			staff.PUT("/:requestId/reject", h.Reject)
		}
	}
}

func (h *VerificationHandler) Submit(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitVerificationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	request, err := h.verificationService.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (h *VerificationHandler) Status(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	request, err := h.verificationService.StatusForUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *VerificationHandler) ListPending(c *gin.Context) {
	requests, err := h.verificationService.ListPending(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
		"total":    len(requests),
	})
}

func (h *VerificationHandler) Approve(c *gin.Context) {
	reviewerID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	request, err := h.verificationService.Approve(c.Request.Context(), c.Param("requestId"), reviewerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *VerificationHandler) Reject(c *gin.Context) {
	reviewerID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	request, err := h.verificationService.Reject(c.Request.Context(), c.Param("requestId"), reviewerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}
