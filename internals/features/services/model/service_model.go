package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service types
const (
	ServiceTypeSingle  = "single"
	ServiceTypePackage = "package"
	ServiceTypeCamp    = "camp"
)

// ServiceModel is a training offering the trainer sells: duration, group
// size, the charged per-person price and the profit target the price was
// derived from. Court references used during quoting are advisory and are
// not stored.
type ServiceModel struct {
	ServiceID     uuid.UUID `gorm:"column:service_id;type:uuid;primaryKey" json:"service_id"`
	ServiceUserID uuid.UUID `gorm:"column:service_user_id;type:uuid;not null;index" json:"service_user_id"`

	ServiceName        string  `gorm:"column:service_name;size:100;not null" json:"service_name"`
	ServiceDescription *string `gorm:"column:service_description;type:text" json:"service_description"`
	ServiceType        string  `gorm:"column:service_type;type:varchar(10);not null;default:'single'" json:"service_type"`

	ServiceDurationHours       float64 `gorm:"column:service_duration_hours;type:numeric(4,2);not null" json:"service_duration_hours"`
	ServiceMinParticipants     int     `gorm:"column:service_min_participants;not null;default:1" json:"service_min_participants"`
	ServiceMaxParticipants     int     `gorm:"column:service_max_participants;not null;default:1" json:"service_max_participants"`
	ServicePricePerPerson      float64 `gorm:"column:service_price_per_person;type:numeric(10,2);not null" json:"service_price_per_person"`
	ServiceTargetProfitPerHour float64 `gorm:"column:service_target_profit_per_hour;type:numeric(10,2);not null;default:0" json:"service_target_profit_per_hour"`
	ServiceSessionsCount       *int    `gorm:"column:service_sessions_count" json:"service_sessions_count"`

	ServiceIsActive bool    `gorm:"column:service_is_active;not null;default:true" json:"service_is_active"`
	ServiceColor    *string `gorm:"column:service_color;size:20" json:"service_color"`

	ServiceCreatedAt time.Time `gorm:"column:service_created_at;autoCreateTime" json:"service_created_at"`
	ServiceUpdatedAt time.Time `gorm:"column:service_updated_at;autoUpdateTime" json:"service_updated_at"`
}

func (ServiceModel) TableName() string {
	return "services"
}

func (m *ServiceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ServiceID == uuid.Nil {
		m.ServiceID = uuid.New()
	}
	return nil
}
