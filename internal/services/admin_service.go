package services

import (
	"context"

	"yaadjobs_backend/internal/models"
	"yaadjobs_backend/internal/repositories"
	"yaadjobs_backend/internal/services/dto"
	"yaadjobs_backend/pkg/apperrors"
)

type AdminService interface {
	ListUsers(ctx context.Context, limit, offset int) ([]models.User, int64, error)
	PlatformStats(ctx context.Context) (*dto.PlatformStats, error)
}

type AdminServiceImpl struct {
	userRepo        repositories.UserRepository
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
) AdminService {
	return &AdminServiceImpl{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

func (s *AdminServiceImpl) ListUsers(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	users, err := s.userRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, apperrors.StoreError(err)
	}
	total, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, 0, apperrors.StoreError(err)
	}
	return users, total, nil
}

func (s *AdminServiceImpl) PlatformStats(ctx context.Context) (*dto.PlatformStats, error) {
	users, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	seekers, err := s.userRepo.CountByRole(ctx, models.UserRoleJobSeeker)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	businesses, err := s.userRepo.CountByRole(ctx, models.UserRoleBusiness)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	freelancers, err := s.userRepo.CountByRole(ctx, models.UserRoleFreelancer)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	jobs, err := s.jobRepo.CountAll(ctx)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	applications, err := s.applicationRepo.CountAll(ctx)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return &dto.PlatformStats{
		Users:        users,
		JobSeekers:   seekers,
		Businesses:   businesses,
		Freelancers:  freelancers,
		Jobs:         jobs,
		Applications: applications,
	}, nil
}
