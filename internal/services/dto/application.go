package dto

import "yaadjobs_backend/internal/models"

type SubmitApplicationRequest struct {
	CoverLetter string `json:"cover_letter,omitempty" validate:"omitempty,max=5000"`
	ResumeURL   string `json:"resume_url,omitempty" validate:"omitempty,url"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required" validate:"required,application-status"`
}
