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

// VerificationService runs the business-identity review workflow:
// a business submits its TRN and registration number, the request joins
// a FIFO review queue, and a staff decision either verifies the user or
// leaves the flag untouched. Requests are decided exactly once.
type VerificationService interface {
	Submit(ctx context.Context, userID string, req *dto.SubmitVerificationRequest) (*dto.VerificationResponse, error)
	ListPending(ctx context.Context) ([]dto.VerificationResponse, error)
	Approve(ctx context.Context, requestID, reviewerID string) (*dto.VerificationResponse, error)
	Reject(ctx context.Context, requestID, reviewerID string) (*dto.VerificationResponse, error)
	StatusForUser(ctx context.Context, userID string) (*dto.VerificationResponse, error)
}

type VerificationServiceImpl struct {
	verificationRepo repositories.VerificationRepository
	userRepo         repositories.UserRepository
	events           EventPublisher
}

func NewVerificationService(
	verificationRepo repositories.VerificationRepository,
	userRepo repositories.UserRepository,
	events EventPublisher,
) VerificationService {
	if events == nil {
		events = NopPublisher{}
	}
	return &VerificationServiceImpl{
		verificationRepo: verificationRepo,
		userRepo:         userRepo,
		events:           events,
	}
}

// Submit files a new pending request. At most one pending request may
// exist per user; resubmission after a rejection is allowed.
func (s *VerificationServiceImpl) Submit(ctx context.Context, userID string, req *dto.SubmitVerificationRequest) (*dto.VerificationResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	if user.Role != models.UserRoleBusiness && user.Role != models.UserRoleFreelancer {
		return nil, apperrors.ErrInsufficientPermissions
	}

	pending, err := s.verificationRepo.HasPending(ctx, userID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	if pending {
		return nil, apperrors.ErrVerificationPendingExists
	}

	request := &models.VerificationRequest{
		UserID:             userID,
		BusinessName:       req.BusinessName,
		RegistrationNumber: req.RegistrationNumber,
		TRN:                req.TRN,
		Status:             models.VerificationStatusPending,
	}

	if err := s.verificationRepo.Create(ctx, request); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicatePending) {
			return nil, apperrors.ErrVerificationPendingExists
		}
		return nil, apperrors.StoreError(err)
	}

	// Keep the masked TRN on the profile current with the latest submission.
	if masked := models.MaskTRN(req.TRN); masked != "" && masked != user.TRNMasked {
		if err := s.userRepo.UpdateFields(ctx, userID, map[string]interface{}{"trn_masked": masked}); err != nil {
			logger.CtxWarn(ctx, "failed to update masked TRN", "user_id", userID, "error", err.Error())
		}
	}

	logger.CtxInfo(ctx, "verification request submitted",
		"request_id", request.ID, "user_id", userID, "business_name", req.BusinessName)

	s.events.PublishToRoles(staffRoleNames, ws.Event{
		Type:    "verification.submitted",
		Payload: map[string]any{"request_id": request.ID, "user_id": userID},
	})

	request.User = user
	resp := buildVerificationResponse(request)
	return &resp, nil
}

// ListPending returns the review queue oldest-first.
func (s *VerificationServiceImpl) ListPending(ctx context.Context) ([]dto.VerificationResponse, error) {
	requests, err := s.verificationRepo.ListPending(ctx)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	responses := make([]dto.VerificationResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, buildVerificationResponse(&requests[i]))
	}
	return responses, nil
}

// Approve moves a pending request to approved and verifies its owner.
// Approving a decided request fails with a conflict and re-stamps nothing.
func (s *VerificationServiceImpl) Approve(ctx context.Context, requestID, reviewerID string) (*dto.VerificationResponse, error) {
	request, err := s.verificationRepo.Approve(ctx, requestID, reviewerID)
	if err != nil {
		return nil, mapDecisionError(err)
	}

	logger.CtxInfo(ctx, "verification request approved",
		"request_id", requestID, "user_id", request.UserID, "reviewer_id", reviewerID)

	s.publishDecision(request)
	resp := buildVerificationResponse(request)
	return &resp, nil
}

// Reject moves a pending request to rejected. The owner's verified flag
// is not touched: an earlier approval is never undone by a later rejection.
func (s *VerificationServiceImpl) Reject(ctx context.Context, requestID, reviewerID string) (*dto.VerificationResponse, error) {
	request, err := s.verificationRepo.Reject(ctx, requestID, reviewerID)
	if err != nil {
		return nil, mapDecisionError(err)
	}

	logger.CtxInfo(ctx, "verification request rejected",
		"request_id", requestID, "user_id", request.UserID, "reviewer_id", reviewerID)

	s.publishDecision(request)
	resp := buildVerificationResponse(request)
	return &resp, nil
}

// StatusForUser returns the user's most recent request, decided or not.
func (s *VerificationServiceImpl) StatusForUser(ctx context.Context, userID string) (*dto.VerificationResponse, error) {
	request, err := s.verificationRepo.LatestByUser(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrVerificationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}
	resp := buildVerificationResponse(request)
	return &resp, nil
}

func (s *VerificationServiceImpl) publishDecision(request *models.VerificationRequest) {
	event := ws.Event{
		Type: "verification.decided",
		Payload: map[string]any{
			"request_id": request.ID,
			"user_id":    request.UserID,
			"status":     request.Status,
		},
	}
	s.events.PublishToUser(request.UserID, event)
	s.events.PublishToRoles(staffRoleNames, event)
}

func mapDecisionError(err error) error {
	switch {
	case apperrors.Is(err, repositories.ErrVerificationNotFound):
		return apperrors.ErrNotFound(err)
	case apperrors.Is(err, repositories.ErrVerificationDecided):
		return apperrors.ErrVerificationDecided
	default:
		return apperrors.StoreError(err)
	}
}

func buildVerificationResponse(request *models.VerificationRequest) dto.VerificationResponse {
	resp := dto.VerificationResponse{
		ID:                 request.ID,
		UserID:             request.UserID,
		BusinessName:       request.BusinessName,
		RegistrationNumber: request.RegistrationNumber,
		TRN:                request.TRN,
		Status:             request.Status,
		ReviewedBy:         request.ReviewedBy,
		ReviewedAt:         request.ReviewedAt,
		CreatedAt:          request.CreatedAt,
	}
	if request.User != nil {
		resp.SubmitterName = request.User.Name
		resp.SubmitterEmail = request.User.Email
	}
	return resp
}

