package repositories

import (
	"context"
	"errors"
	"time"

	"yaadjobs_backend/internal/models"

	"gorm.io/gorm"
)

type VerificationRepository interface {
	Create(ctx context.Context, req *models.VerificationRequest) error
	FindByID(ctx context.Context, id string) (*models.VerificationRequest, error)
	ListPending(ctx context.Context) ([]models.VerificationRequest, error)
	HasPending(ctx context.Context, userID string) (bool, error)
	LatestByUser(ctx context.Context, userID string) (*models.VerificationRequest, error)
	Approve(ctx context.Context, requestID, reviewerID string) (*models.VerificationRequest, error)
	Reject(ctx context.Context, requestID, reviewerID string) (*models.VerificationRequest, error)
}

type VerificationRepositoryImpl struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &VerificationRepositoryImpl{db: db}
}

func (r *VerificationRepositoryImpl) Create(ctx context.Context, req *models.VerificationRequest) error {
	err := r.db.WithContext(ctx).Create(req).Error
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicatePending
		}
		return err
	}
	return nil
}

func (r *VerificationRepositoryImpl) FindByID(ctx context.Context, id string) (*models.VerificationRequest, error) {
	var req models.VerificationRequest
	err := r.db.WithContext(ctx).Preload("User").First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVerificationNotFound
		}
		return nil, err
	}
	return &req, nil
}

// ListPending returns the review queue oldest-first, each joined with
// its submitter so staff see name and email without extra lookups.
func (r *VerificationRepositoryImpl) ListPending(ctx context.Context) ([]models.VerificationRequest, error) {
	var requests []models.VerificationRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ?", models.VerificationStatusPending).
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

func (r *VerificationRepositoryImpl) HasPending(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.VerificationRequest{}).
		Where("user_id = ? AND status = ?", userID, models.VerificationStatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *VerificationRepositoryImpl) LatestByUser(ctx context.Context, userID string) (*models.VerificationRequest, error) {
	var req models.VerificationRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVerificationNotFound
		}
		return nil, err
	}
	return &req, nil
}

// Approve decides a pending request and flips the owner's verified flag.
// Both writes run inside one transaction; the status update is conditional
// on status='pending' so concurrent reviewers cannot both win.
func (r *VerificationRepositoryImpl) Approve(ctx context.Context, requestID, reviewerID string) (*models.VerificationRequest, error) {
	var req models.VerificationRequest

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&req, "id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVerificationNotFound
			}
			return err
		}

		now := time.Now()
		res := tx.Model(&models.VerificationRequest{}).
			Where("id = ? AND status = ?", requestID, models.VerificationStatusPending).
			Updates(map[string]interface{}{
				"status":      models.VerificationStatusApproved,
				"reviewed_by": reviewerID,
				"reviewed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVerificationDecided
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", req.UserID).
			Update("verified", true).Error; err != nil {
			return err
		}

		return tx.Preload("User").First(&req, "id = ?", requestID).Error
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Reject decides a pending request. The owner's verified flag is left
// untouched: a rejection never de-verifies a previously approved user.
func (r *VerificationRepositoryImpl) Reject(ctx context.Context, requestID, reviewerID string) (*models.VerificationRequest, error) {
	var req models.VerificationRequest

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&req, "id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVerificationNotFound
			}
			return err
		}

		now := time.Now()
		res := tx.Model(&models.VerificationRequest{}).
			Where("id = ? AND status = ?", requestID, models.VerificationStatusPending).
			Updates(map[string]interface{}{
				"status":      models.VerificationStatusRejected,
				"reviewed_by": reviewerID,
				"reviewed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVerificationDecided
		}

		return tx.Preload("User").First(&req, "id = ?", requestID).Error
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}
