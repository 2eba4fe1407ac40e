package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Name         string   `gorm:"not null" json:"name"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	Verified     bool     `gorm:"default:false" json:"verified"`

	// TRN is never stored in clear on the user row, only its masked form.
	TRNMasked string `gorm:"column:trn_masked" json:"trn_masked,omitempty"`

	Location    Parish         `gorm:"type:varchar(20)" json:"location,omitempty"`
	Bio         string         `json:"bio,omitempty"`
	Skills      datatypes.JSON `gorm:"type:jsonb" json:"skills,omitempty"`
	LinkedinURL string         `json:"linkedin_url,omitempty"`
	Phone       string         `json:"phone,omitempty"`
	AvatarURL   string         `json:"avatar_url,omitempty"`

	// Relations
	RefreshTokens        []RefreshToken        `gorm:"foreignKey:UserID" json:"-"`
	VerificationRequests []VerificationRequest `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}

// MaskTRN reduces a raw TRN to its display form, e.g. "***-***-789".
func MaskTRN(trn string) string {
	if len(trn) < 3 {
		return ""
	}
	return "***-***-" + trn[len(trn)-3:]
}
