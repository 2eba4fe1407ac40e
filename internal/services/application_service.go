package services

import (
	"context"

	"yaadjobs_backend/internal/logger"
	"yaadjobs_backend/internal/models"
	"yaadjobs_backend/internal/repositories"
	"yaadjobs_backend/internal/services/dto"
	"yaadjobs_backend/pkg/apperrors"
	"yaadjobs_backend/ws"
)

type ApplicationService interface {
	Submit(ctx context.Context, jobID, userID string, req *dto.SubmitApplicationRequest) (*models.Application, error)
	MyApplications(ctx context.Context, userID string) ([]models.Application, error)
	ForJob(ctx context.Context, jobID, requesterID string) ([]models.Application, error)
	UpdateStatus(ctx context.Context, applicationID, requesterID string, status models.ApplicationStatus) (*models.Application, error)
	Get(ctx context.Context, applicationID, requesterID string) (*models.Application, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	events          EventPublisher
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	events EventPublisher,
) ApplicationService {
	if events == nil {
		events = NopPublisher{}
	}
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		events:          events,
	}
}

// Submit applies to an active job. One application per (job, user);
// the database constraint is the source of truth, not a pre-check.
func (s *ApplicationServiceImpl) Submit(ctx context.Context, jobID, userID string, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	if job.Status != models.JobStatusActive {
		return nil, apperrors.ErrJobClosed
	}

	app := &models.Application{
		JobID:       jobID,
		UserID:      userID,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
		Status:      models.ApplicationStatusSubmitted,
	}

	if err := s.applicationRepo.Create(ctx, app); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.StoreError(err)
	}

	logger.CtxInfo(ctx, "application submitted", "application_id", app.ID, "job_id", jobID, "user_id", userID)

	s.events.PublishToUser(job.BusinessID, ws.Event{
		Type:    "application.submitted",
		Payload: map[string]any{"application_id": app.ID, "job_id": jobID},
	})

	app.Job = job
	return app, nil
}

func (s *ApplicationServiceImpl) MyApplications(ctx context.Context, userID string) ([]models.Application, error) {
	apps, err := s.applicationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return apps, nil
}

// ForJob lists a job's applications; only the posting business may look.
func (s *ApplicationServiceImpl) ForJob(ctx context.Context, jobID, requesterID string) ([]models.Application, error) {
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

	apps, err := s.applicationRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return apps, nil
}

func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, applicationID, requesterID string, status models.ApplicationStatus) (*models.Application, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	app, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	if app.Job == nil || app.Job.BusinessID != requesterID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	updated, err := s.applicationRepo.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	logger.CtxInfo(ctx, "application status updated",
		"application_id", applicationID, "status", status)

	s.events.PublishToUser(app.UserID, ws.Event{
		Type:    "application.updated",
		Payload: map[string]any{"application_id": applicationID, "status": status},
	})

	return updated, nil
}

// Get returns an application to its applicant or the job's owner.
func (s *ApplicationServiceImpl) Get(ctx context.Context, applicationID, requesterID string) (*models.Application, error) {
	app, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	isApplicant := app.UserID == requesterID
	isOwner := app.Job != nil && app.Job.BusinessID == requesterID
	if !isApplicant && !isOwner {
		return nil, apperrors.ErrInsufficientPermissions
	}

	return app, nil
}
