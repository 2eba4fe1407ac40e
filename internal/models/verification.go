package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VerificationRequest is a business user's submission of identity and
// registration data awaiting staff review. Status only ever moves
// pending -> approved or pending -> rejected; decided requests are immutable.
type VerificationRequest struct {
	ID                 string             `gorm:"type:uuid;primaryKey" json:"id"`
	// The partial unique index enforces at most one pending request per
	// user; decided requests accumulate freely.
	UserID             string             `gorm:"not null;index:idx_verification_one_pending,unique,where:status = 'pending'" json:"user_id"`
	BusinessName       string             `gorm:"not null" json:"business_name"`
	RegistrationNumber string             `gorm:"not null" json:"registration_number"`
	TRN                string             `gorm:"column:trn;not null" json:"trn"`
	Status             VerificationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ReviewedBy         *string            `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt         *time.Time         `json:"reviewed_at,omitempty"`
	CreatedAt          time.Time          `gorm:"autoCreateTime" json:"created_at"`

	User     *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Reviewer *User `gorm:"foreignKey:ReviewedBy" json:"-"`
}

func (v *VerificationRequest) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
