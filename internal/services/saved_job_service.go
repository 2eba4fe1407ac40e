package services

import (
	"context"

	"yaadjobs_backend/internal/models"
	"yaadjobs_backend/internal/repositories"
	"yaadjobs_backend/pkg/apperrors"
)

type SavedJobService interface {
	Save(ctx context.Context, userID, jobID string) error
	Unsave(ctx context.Context, userID, jobID string) error
	List(ctx context.Context, userID string) ([]models.SavedJob, error)
	IsSaved(ctx context.Context, userID, jobID string) (bool, error)
}

type SavedJobServiceImpl struct {
	savedJobRepo repositories.SavedJobRepository
	jobRepo      repositories.JobRepository
}

func NewSavedJobService(
	savedJobRepo repositories.SavedJobRepository,
	jobRepo repositories.JobRepository,
) SavedJobService {
	return &SavedJobServiceImpl{
		savedJobRepo: savedJobRepo,
		jobRepo:      jobRepo,
	}
}

func (s *SavedJobServiceImpl) Save(ctx context.Context, userID, jobID string) error {
	if _, err := s.jobRepo.FindByID(ctx, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.StoreError(err)
	}

	saved := &models.SavedJob{UserID: userID, JobID: jobID}
	if err := s.savedJobRepo.Save(ctx, saved); err != nil {
		return apperrors.StoreError(err)
	}
	return nil
}

func (s *SavedJobServiceImpl) Unsave(ctx context.Context, userID, jobID string) error {
	if err := s.savedJobRepo.Delete(ctx, userID, jobID); err != nil {
		return apperrors.StoreError(err)
	}
	return nil
}

func (s *SavedJobServiceImpl) List(ctx context.Context, userID string) ([]models.SavedJob, error) {
	saved, err := s.savedJobRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return saved, nil
}

func (s *SavedJobServiceImpl) IsSaved(ctx context.Context, userID, jobID string) (bool, error) {
	exists, err := s.savedJobRepo.Exists(ctx, userID, jobID)
	if err != nil {
		return false, apperrors.StoreError(err)
	}
	return exists, nil
}
