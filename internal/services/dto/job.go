package dto

import "yaadjobs_backend/internal/models"

type CreateJobRequest struct {
	Title       string          `json:"title" binding:"required" validate:"required,min=3,max=200"`
	CompanyName string          `json:"company_name" binding:"required" validate:"required,min=2,max=200"`
	Location    models.Parish   `json:"location" binding:"required" validate:"required,parish"`
	Type        models.JobType  `json:"type" binding:"required" validate:"required,job-type"`
	SalaryRange string          `json:"salary_range,omitempty" validate:"omitempty,max=100"`
	Description string          `json:"description" binding:"required" validate:"required,min=10"`
	Skills      []string        `json:"skills,omitempty" validate:"omitempty,max=30"`
	IsFeatured  bool            `json:"is_featured,omitempty"`
}

type UpdateJobRequest struct {
	Title       *string         `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	CompanyName *string         `json:"company_name,omitempty" validate:"omitempty,min=2,max=200"`
	Location    *models.Parish  `json:"location,omitempty" validate:"omitempty,parish"`
	Type        *models.JobType `json:"type,omitempty" validate:"omitempty,job-type"`
	SalaryRange *string         `json:"salary_range,omitempty" validate:"omitempty,max=100"`
	Description *string         `json:"description,omitempty" validate:"omitempty,min=10"`
	Skills      []string        `json:"skills,omitempty" validate:"omitempty,max=30"`
	IsFeatured  *bool           `json:"is_featured,omitempty"`
}

type SearchJobsRequest struct {
	Parish models.Parish  `form:"parish" validate:"omitempty,parish"`
	Type   models.JobType `form:"type" validate:"omitempty,job-type"`
	Search string         `form:"search" validate:"omitempty,max=200"`
}
