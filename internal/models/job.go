package models

import "gorm.io/datatypes"

type JobListing struct {
	BaseModel
	BusinessID  string         `gorm:"not null;index" json:"business_id"`
	Title       string         `gorm:"not null" json:"title"`
	CompanyName string         `gorm:"not null" json:"company_name"`
	Location    Parish         `gorm:"type:varchar(20);not null" json:"location"`
	Type        JobType        `gorm:"type:varchar(20);not null" json:"type"`
	SalaryRange string         `json:"salary_range,omitempty"`
	Description string         `gorm:"not null" json:"description"`
	Skills      datatypes.JSON `gorm:"type:jsonb" json:"skills,omitempty"`
	IsFeatured  bool           `gorm:"default:false" json:"is_featured"`
	Status      JobStatus      `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	Views       int            `gorm:"default:0" json:"views"`

	Business *User `gorm:"foreignKey:BusinessID" json:"-"`
}
