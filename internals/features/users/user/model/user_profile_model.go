package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfileModel holds the trainer-facing profile: business identity and
// the default tax rates used on the reports screen.
type UserProfileModel struct {
	ProfileID     uuid.UUID `gorm:"column:profile_id;type:uuid;primaryKey" json:"profile_id"`
	ProfileUserID uuid.UUID `gorm:"column:profile_user_id;type:uuid;not null;uniqueIndex" json:"profile_user_id"`

	ProfileFullName     *string `gorm:"column:profile_full_name;size:100" json:"profile_full_name"`
	ProfilePhone        *string `gorm:"column:profile_phone;size:30" json:"profile_phone"`
	ProfileBusinessName *string `gorm:"column:profile_business_name;size:150" json:"profile_business_name"`
	ProfileAvatarURL    *string `gorm:"column:profile_avatar_url;type:text" json:"profile_avatar_url"`

	ProfileDefaultVAT     float64 `gorm:"column:profile_default_vat;type:numeric(5,2);not null;default:23" json:"profile_default_vat"`
	ProfileDefaultPITRate float64 `gorm:"column:profile_default_pit_rate;type:numeric(5,2);not null;default:12" json:"profile_default_pit_rate"`

	ProfileCreatedAt time.Time `gorm:"column:profile_created_at;autoCreateTime" json:"profile_created_at"`
	ProfileUpdatedAt time.Time `gorm:"column:profile_updated_at;autoUpdateTime" json:"profile_updated_at"`
}

func (UserProfileModel) TableName() string {
	return "user_profiles"
}

func (p *UserProfileModel) BeforeCreate(tx *gorm.DB) error {
	if p.ProfileID == uuid.Nil {
		p.ProfileID = uuid.New()
	}
	return nil
}
