package repositories

import (
	"context"

	"yaadjobs_backend/internal/models"

	"gorm.io/gorm"
)

type SavedJobRepository interface {
	Save(ctx context.Context, saved *models.SavedJob) error
	Delete(ctx context.Context, userID, jobID string) error
	ListByUser(ctx context.Context, userID string) ([]models.SavedJob, error)
	Exists(ctx context.Context, userID, jobID string) (bool, error)
}

type SavedJobRepositoryImpl struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &SavedJobRepositoryImpl{db: db}
}

// Save is idempotent: a duplicate save is not an error.
func (r *SavedJobRepositoryImpl) Save(ctx context.Context, saved *models.SavedJob) error {
	err := r.db.WithContext(ctx).Create(saved).Error
	if err != nil && isUniqueViolation(err) {
		return nil
	}
	return err
}

func (r *SavedJobRepositoryImpl) Delete(ctx context.Context, userID, jobID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Delete(&models.SavedJob{}).Error
}

func (r *SavedJobRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	return saved, err
}

func (r *SavedJobRepositoryImpl) Exists(ctx context.Context, userID, jobID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SavedJob{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	return count > 0, err
}
