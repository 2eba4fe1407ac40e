package dto

import "yaadjobs_backend/internal/models"

type RegisterRequest struct {
	Email    string          `json:"email" binding:"required" validate:"required,email"`
	Password string          `json:"password" binding:"required" validate:"required,min=8"`
	Name     string          `json:"name" binding:"required" validate:"required,min=2,max=100"`
	Role     models.UserRole `json:"role" binding:"required" validate:"required,user-role"`
	Location models.Parish   `json:"location,omitempty" validate:"omitempty,parish"`
	TRN      string          `json:"trn,omitempty" validate:"omitempty,trn"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}

type UserResponse struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	Role        models.UserRole `json:"role"`
	Verified    bool            `json:"verified"`
	TRNMasked   string          `json:"trn_masked,omitempty"`
	Location    models.Parish   `json:"location,omitempty"`
	Bio         string          `json:"bio,omitempty"`
	Skills      []string        `json:"skills,omitempty"`
	LinkedinURL string          `json:"linkedin_url,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	AvatarURL   string          `json:"avatar_url,omitempty"`
}

type UpdateProfileRequest struct {
	Name        *string        `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Location    *models.Parish `json:"location,omitempty" validate:"omitempty,parish"`
	Bio         *string        `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Skills      []string       `json:"skills,omitempty" validate:"omitempty,max=30"`
	LinkedinURL *string        `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	Phone       *string        `json:"phone,omitempty" validate:"omitempty,max=20"`
	AvatarURL   *string        `json:"avatar_url,omitempty" validate:"omitempty,url"`
}
