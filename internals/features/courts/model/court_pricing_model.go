package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Day-type selector for a pricing slot
const (
	DayTypeWeekday = "weekday"
	DayTypeWeekend = "weekend"
	DayTypeAll     = "all"
)

// CourtPricingModel is a time-windowed hourly rate rule scoped to one court.
// Times are wall clock ("HH:MM"), no date, no timezone. The row carries no
// user id: scope is inherited through the parent court.
type CourtPricingModel struct {
	CourtPricingID      uuid.UUID `gorm:"column:court_pricing_id;type:uuid;primaryKey" json:"court_pricing_id"`
	CourtPricingCourtID uuid.UUID `gorm:"column:court_pricing_court_id;type:uuid;not null;index" json:"court_pricing_court_id"`

	CourtPricingName         string  `gorm:"column:court_pricing_name;size:100;not null" json:"court_pricing_name"`
	CourtPricingDayType      string  `gorm:"column:court_pricing_day_type;type:varchar(10);not null;default:'all'" json:"court_pricing_day_type"`
	CourtPricingStartTime    string  `gorm:"column:court_pricing_start_time;type:varchar(5);not null" json:"court_pricing_start_time"`
	CourtPricingEndTime      string  `gorm:"column:court_pricing_end_time;type:varchar(5);not null" json:"court_pricing_end_time"`
	CourtPricingPricePerHour float64 `gorm:"column:court_pricing_price_per_hour;type:numeric(10,2);not null" json:"court_pricing_price_per_hour"`

	CourtPricingIsActive     bool `gorm:"column:court_pricing_is_active;not null;default:true" json:"court_pricing_is_active"`
	CourtPricingDisplayOrder int  `gorm:"column:court_pricing_display_order;not null;default:0" json:"court_pricing_display_order"`

	CourtPricingCreatedAt time.Time `gorm:"column:court_pricing_created_at;autoCreateTime" json:"court_pricing_created_at"`
	CourtPricingUpdatedAt time.Time `gorm:"column:court_pricing_updated_at;autoUpdateTime" json:"court_pricing_updated_at"`
}

func (CourtPricingModel) TableName() string {
	return "court_pricing"
}

func (m *CourtPricingModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourtPricingID == uuid.Nil {
		m.CourtPricingID = uuid.New()
	}
	return nil
}
