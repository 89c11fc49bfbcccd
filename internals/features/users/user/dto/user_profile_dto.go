package dto

import (
	"time"

	"padelku_backend/internals/features/users/user/model"
)

// ============================
// Response DTO
// ============================

type UserProfileDTO struct {
	ProfileID             string    `json:"profile_id"`
	ProfileUserID         string    `json:"profile_user_id"`
	ProfileFullName       *string   `json:"profile_full_name"`
	ProfilePhone          *string   `json:"profile_phone"`
	ProfileBusinessName   *string   `json:"profile_business_name"`
	ProfileAvatarURL      *string   `json:"profile_avatar_url"`
	ProfileDefaultVAT     float64   `json:"profile_default_vat"`
	ProfileDefaultPITRate float64   `json:"profile_default_pit_rate"`
	ProfileCreatedAt      time.Time `json:"profile_created_at"`
	ProfileUpdatedAt      time.Time `json:"profile_updated_at"`
}

// ============================
// Update Request DTO
// ============================

type UpdateUserProfileRequest struct {
	ProfileFullName       *string  `json:"profile_full_name" validate:"omitempty,max=100"`
	ProfilePhone          *string  `json:"profile_phone" validate:"omitempty,max=30"`
	ProfileBusinessName   *string  `json:"profile_business_name" validate:"omitempty,max=150"`
	ProfileAvatarURL      *string  `json:"profile_avatar_url" validate:"omitempty,url"`
	ProfileDefaultVAT     *float64 `json:"profile_default_vat" validate:"omitempty,gte=0,lte=100"`
	ProfileDefaultPITRate *float64 `json:"profile_default_pit_rate" validate:"omitempty,gte=0,lte=100"`
}

// ============================
// Converter
// ============================

func ToUserProfileDTO(m model.UserProfileModel) UserProfileDTO {
	return UserProfileDTO{
		ProfileID:             m.ProfileID.String(),
		ProfileUserID:         m.ProfileUserID.String(),
		ProfileFullName:       m.ProfileFullName,
		ProfilePhone:          m.ProfilePhone,
		ProfileBusinessName:   m.ProfileBusinessName,
		ProfileAvatarURL:      m.ProfileAvatarURL,
		ProfileDefaultVAT:     m.ProfileDefaultVAT,
		ProfileDefaultPITRate: m.ProfileDefaultPITRate,
		ProfileCreatedAt:      m.ProfileCreatedAt,
		ProfileUpdatedAt:      m.ProfileUpdatedAt,
	}
}
