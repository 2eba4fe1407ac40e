package dto

import (
	"time"

	"yaadjobs_backend/internal/models"
)

type SubmitVerificationRequest struct {
	BusinessName       string `json:"business_name" binding:"required" validate:"required,min=2,max=200"`
	RegistrationNumber string `json:"registration_number" binding:"required" validate:"required,min=2,max=50"`
	TRN                string `json:"trn" binding:"required" validate:"required,trn"`
}

// VerificationResponse is the review-queue view of a request: the raw
// request plus the submitter's public identity.
type VerificationResponse struct {
	ID                 string                    `json:"id"`
	UserID             string                    `json:"user_id"`
	BusinessName       string                    `json:"business_name"`
	RegistrationNumber string                    `json:"registration_number"`
	TRN                string                    `json:"trn"`
	Status             models.VerificationStatus `json:"status"`
	ReviewedBy         *string                   `json:"reviewed_by,omitempty"`
	ReviewedAt         *time.Time                `json:"reviewed_at,omitempty"`
	CreatedAt          time.Time                 `json:"created_at"`
	SubmitterName      string                    `json:"submitter_name,omitempty"`
	SubmitterEmail     string                    `json:"submitter_email,omitempty"`
}
