package models

type Application struct {
	BaseModel
	JobID       string            `gorm:"not null;index;uniqueIndex:idx_applications_job_user" json:"job_id"`
	UserID      string            `gorm:"not null;index;uniqueIndex:idx_applications_job_user" json:"user_id"`
	CoverLetter string            `json:"cover_letter,omitempty"`
	ResumeURL   string            `json:"resume_url,omitempty"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'submitted'" json:"status"`

	Job       *JobListing `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Applicant *User       `gorm:"foreignKey:UserID" json:"applicant,omitempty"`
}
