package services

import (
	"context"
	"encoding/json"

	"yaadjobs_backend/internal/logger"
	"yaadjobs_backend/internal/models"
	"yaadjobs_backend/internal/repositories"
	"yaadjobs_backend/internal/services/dto"
	"yaadjobs_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type JobService interface {
	Search(ctx context.Context, req dto.SearchJobsRequest, page, pageSize int) ([]models.JobListing, int64, error)
	Get(ctx context.Context, jobID, requesterID string) (*models.JobListing, error)
	Featured(ctx context.Context, limit int) ([]models.JobListing, error)
	MyJobs(ctx context.Context, businessID string) ([]models.JobListing, error)
	Create(ctx context.Context, businessID string, req *dto.CreateJobRequest) (*models.JobListing, error)
	Update(ctx context.Context, jobID, requesterID string, req *dto.UpdateJobRequest) (*models.JobListing, error)
	Close(ctx context.Context, jobID, requesterID string) error
	ApplicationCount(ctx context.Context, jobID string) (int64, error)
}

type JobServiceImpl struct {
	jobRepo         repositories.JobRepository
	userRepo        repositories.UserRepository
	applicationRepo repositories.ApplicationRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	applicationRepo repositories.ApplicationRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		applicationRepo: applicationRepo,
	}
}

func (s *JobServiceImpl) Search(ctx context.Context, req dto.SearchJobsRequest, page, pageSize int) ([]models.JobListing, int64, error) {
	jobs, total, err := s.jobRepo.Search(ctx, repositories.JobFilter{
		Parish:   req.Parish,
		Type:     req.Type,
		Search:   req.Search,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, 0, apperrors.StoreError(err)
	}
	return jobs, total, nil
}

// Get fetches a listing; views count every read except the owner's.
func (s *JobServiceImpl) Get(ctx context.Context, jobID, requesterID string) (*models.JobListing, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	if requesterID != job.BusinessID {
		if err := s.jobRepo.IncrementViews(ctx, jobID); err != nil {
			logger.CtxWarn(ctx, "failed to increment job views", "job_id", jobID, "error", err.Error())
		}
	}

	return job, nil
}

func (s *JobServiceImpl) Featured(ctx context.Context, limit int) ([]models.JobListing, error) {
	if limit <= 0 {
		limit = 3
	}
	jobs, err := s.jobRepo.FindFeatured(ctx, limit)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) MyJobs(ctx context.Context, businessID string) ([]models.JobListing, error) {
	jobs, err := s.jobRepo.FindByBusiness(ctx, businessID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) Create(ctx context.Context, businessID string, req *dto.CreateJobRequest) (*models.JobListing, error) {
	business, err := s.userRepo.FindByID(ctx, businessID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	if business.Role != models.UserRoleBusiness {
		return nil, apperrors.ErrInsufficientPermissions
	}

	skillsJSON, err := json.Marshal(req.Skills)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	job := &models.JobListing{
		BusinessID:  businessID,
		Title:       req.Title,
		CompanyName: req.CompanyName,
		Location:    req.Location,
		Type:        req.Type,
		SalaryRange: req.SalaryRange,
		Description: req.Description,
		Skills:      datatypes.JSON(skillsJSON),
		IsFeatured:  req.IsFeatured,
		Status:      models.JobStatusActive,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, apperrors.StoreError(err)
	}

	logger.CtxInfo(ctx, "job listing created", "job_id", job.ID, "business_id", businessID)

	return job, nil
}

func (s *JobServiceImpl) Update(ctx context.Context, jobID, requesterID string, req *dto.UpdateJobRequest) (*models.JobListing, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	if job.BusinessID != requesterID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.CompanyName != nil {
		job.CompanyName = *req.CompanyName
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.SalaryRange != nil {
		job.SalaryRange = *req.SalaryRange
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Skills != nil {
		skillsJSON, err := json.Marshal(req.Skills)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		job.Skills = datatypes.JSON(skillsJSON)
	}
	if req.IsFeatured != nil {
		job.IsFeatured = *req.IsFeatured
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, apperrors.StoreError(err)
	}

	return job, nil
}

// Close flips the listing to closed; rows are never deleted.
func (s *JobServiceImpl) Close(ctx context.Context, jobID, requesterID string) error {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.StoreError(err)
	}

	if job.BusinessID != requesterID {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.jobRepo.Close(ctx, jobID); err != nil {
		return apperrors.StoreError(err)
	}

	logger.CtxInfo(ctx, "job listing closed", "job_id", jobID)
	return nil
}

func (s *JobServiceImpl) ApplicationCount(ctx context.Context, jobID string) (int64, error) {
	count, err := s.applicationRepo.CountByJob(ctx, jobID)
	if err != nil {
		return 0, apperrors.StoreError(err)
	}
	return count, nil
}
