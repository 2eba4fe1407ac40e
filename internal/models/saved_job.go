package models

type SavedJob struct {
	BaseModel
	UserID string `gorm:"not null;index;uniqueIndex:idx_saved_jobs_user_job" json:"user_id"`
	JobID  string `gorm:"not null;uniqueIndex:idx_saved_jobs_user_job" json:"job_id"`

	Job *JobListing `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
