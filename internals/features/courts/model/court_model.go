package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Court types
const (
	CourtTypeSingle = "single"
	CourtTypeDouble = "double"
)

// CourtModel represents one physical court / club location owned by a user.
// CourtHourlyRate is the legacy flat rate; the pricing table below it is the
// source of truth whenever slots exist.
type CourtModel struct {
	CourtID     uuid.UUID `gorm:"column:court_id;type:uuid;primaryKey" json:"court_id"`
	CourtUserID uuid.UUID `gorm:"column:court_user_id;type:uuid;not null;index" json:"court_user_id"`

	CourtName       string   `gorm:"column:court_name;size:100;not null" json:"court_name"`
	CourtClubName   *string  `gorm:"column:court_club_name;size:150" json:"court_club_name"`
	CourtType       string   `gorm:"column:court_type;type:varchar(10);not null;default:'double'" json:"court_type"`
	CourtHourlyRate *float64 `gorm:"column:court_hourly_rate;type:numeric(10,2)" json:"court_hourly_rate"`

	CourtIsActive     bool    `gorm:"column:court_is_active;not null;default:true" json:"court_is_active"`
	CourtColor        *string `gorm:"column:court_color;size:20" json:"court_color"`
	CourtAvatarURL    *string `gorm:"column:court_avatar_url;type:text" json:"court_avatar_url"`
	CourtDisplayOrder int     `gorm:"column:court_display_order;not null;default:0" json:"court_display_order"`

	CourtCreatedAt time.Time `gorm:"column:court_created_at;autoCreateTime" json:"court_created_at"`

	// Owned pricing slots; removed together with the court.
	Pricing []CourtPricingModel `gorm:"foreignKey:CourtPricingCourtID;references:CourtID;constraint:OnDelete:CASCADE" json:"pricing,omitempty"`
}

func (CourtModel) TableName() string {
	return "courts"
}

func (m *CourtModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourtID == uuid.Nil {
		m.CourtID = uuid.New()
	}
	return nil
}
