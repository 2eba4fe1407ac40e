package repositories

import (
	"context"
	"errors"
	"time"

	"yaadjobs_backend/internal/models"

	"gorm.io/gorm"
)

// JobFilter narrows job searches. Zero values mean "no filter".
type JobFilter struct {
	Parish   models.Parish
	Type     models.JobType
	Search   string
	Page     int
	PageSize int
}

type JobRepository interface {
	Create(ctx context.Context, job *models.JobListing) error
	FindByID(ctx context.Context, id string) (*models.JobListing, error)
	Search(ctx context.Context, filter JobFilter) ([]models.JobListing, int64, error)
	FindFeatured(ctx context.Context, limit int) ([]models.JobListing, error)
	FindByBusiness(ctx context.Context, businessID string) ([]models.JobListing, error)
	Update(ctx context.Context, job *models.JobListing) error
	Close(ctx context.Context, id string) error
	CloseExpiredFeatured(ctx context.Context, maxAgeDays int) (int64, error)
	IncrementViews(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(ctx context.Context, job *models.JobListing) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(ctx context.Context, id string) (*models.JobListing, error) {
	var job models.JobListing
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Search(ctx context.Context, filter JobFilter) ([]models.JobListing, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.JobListing{}).
		Where("status = ?", models.JobStatusActive)

	if filter.Parish != "" {
		query = query.Where("location = ?", filter.Parish)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(filter.PageSize).Offset((page - 1) * filter.PageSize)
	}

	var jobs []models.JobListing
	err := query.Order("created_at DESC").Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepositoryImpl) FindFeatured(ctx context.Context, limit int) ([]models.JobListing, error) {
	var jobs []models.JobListing
	err := r.db.WithContext(ctx).
		Where("status = ? AND is_featured = ?", models.JobStatusActive, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByBusiness(ctx context.Context, businessID string) ([]models.JobListing, error) {
	var jobs []models.JobListing
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Update(ctx context.Context, job *models.JobListing) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// Close soft-deletes a listing by flipping its status.
func (r *JobRepositoryImpl) Close(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&models.JobListing{}).
		Where("id = ?", id).
		Update("status", models.JobStatusClosed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// CloseExpiredFeatured demotes featured listings older than maxAgeDays.
func (r *JobRepositoryImpl) CloseExpiredFeatured(ctx context.Context, maxAgeDays int) (int64, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE job_listings
		SET is_featured = ?
		WHERE is_featured = ? AND created_at < ?
	`, false, true, daysAgo(maxAgeDays))
	return res.RowsAffected, res.Error
}

func (r *JobRepositoryImpl) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&models.JobListing{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *JobRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.JobListing{}).Count(&count).Error
	return count, err
}

func daysAgo(days int) time.Time {
	return time.Now().AddDate(0, 0, -days)
}
