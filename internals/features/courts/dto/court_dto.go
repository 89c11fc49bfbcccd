package dto

import (
	"fmt"
	"time"

	"padelku_backend/internals/features/courts/model"
)

// ============================
// Response DTOs
// ============================

type CourtPricingDTO struct {
	CourtPricingID           string    `json:"court_pricing_id"`
	CourtPricingCourtID      string    `json:"court_pricing_court_id"`
	CourtPricingName         string    `json:"court_pricing_name"`
	CourtPricingDayType      string    `json:"court_pricing_day_type"`
	CourtPricingStartTime    string    `json:"court_pricing_start_time"`
	CourtPricingEndTime      string    `json:"court_pricing_end_time"`
	CourtPricingPricePerHour float64   `json:"court_pricing_price_per_hour"`
	CourtPricingIsActive     bool      `json:"court_pricing_is_active"`
	CourtPricingDisplayOrder int       `json:"court_pricing_display_order"`
	CourtPricingCreatedAt    time.Time `json:"court_pricing_created_at"`
	CourtPricingUpdatedAt    time.Time `json:"court_pricing_updated_at"`
}

type CourtDTO struct {
	CourtID           string            `json:"court_id"`
	CourtUserID       string            `json:"court_user_id"`
	CourtName         string            `json:"court_name"`
	CourtClubName     *string           `json:"court_club_name"`
	CourtType         string            `json:"court_type"`
	CourtHourlyRate   *float64          `json:"court_hourly_rate"`
	CourtIsActive     bool              `json:"court_is_active"`
	CourtColor        *string           `json:"court_color"`
	CourtAvatarURL    *string           `json:"court_avatar_url"`
	CourtDisplayOrder int               `json:"court_display_order"`
	CourtCreatedAt    time.Time         `json:"court_created_at"`
	Pricing           []CourtPricingDTO `json:"pricing"`
}

// ============================
// Request DTOs
// ============================

type CourtPricingRequest struct {
	CourtPricingName         string  `json:"court_pricing_name" validate:"required,min=1,max=100"`
	CourtPricingDayType      string  `json:"court_pricing_day_type" validate:"required,oneof=weekday weekend all"`
	CourtPricingStartTime    string  `json:"court_pricing_start_time" validate:"required,len=5"`
	CourtPricingEndTime      string  `json:"court_pricing_end_time" validate:"required,len=5"`
	CourtPricingPricePerHour float64 `json:"court_pricing_price_per_hour" validate:"gte=0"`
	CourtPricingIsActive     *bool   `json:"court_pricing_is_active"`
	CourtPricingDisplayOrder *int    `json:"court_pricing_display_order"`
}

// ValidateWindow enforces start < end on the wall clock. The dashboard never
// enforced this; the API does.
func (r CourtPricingRequest) ValidateWindow() error {
	start, err := time.Parse("15:04", r.CourtPricingStartTime)
	if err != nil {
		return fmt.Errorf("court_pricing_start_time must be HH:MM")
	}
	end, err := time.Parse("15:04", r.CourtPricingEndTime)
	if err != nil {
		return fmt.Errorf("court_pricing_end_time must be HH:MM")
	}
	if !start.Before(end) {
		return fmt.Errorf("court_pricing_start_time must be before court_pricing_end_time")
	}
	return nil
}

type CreateCourtRequest struct {
	CourtName         string   `json:"court_name" validate:"required,min=1,max=100"`
	CourtClubName     *string  `json:"court_club_name" validate:"omitempty,max=150"`
	CourtType         string   `json:"court_type" validate:"omitempty,oneof=single double"`
	CourtHourlyRate   *float64 `json:"court_hourly_rate" validate:"omitempty,gte=0"`
	CourtIsActive     *bool    `json:"court_is_active"`
	CourtColor        *string  `json:"court_color" validate:"omitempty,max=20"`
	CourtAvatarURL    *string  `json:"court_avatar_url" validate:"omitempty,url"`
	CourtDisplayOrder *int     `json:"court_display_order"`

	// Optional initial slots, inserted with the court in one transaction.
	PricingSlots []CourtPricingRequest `json:"pricing_slots" validate:"omitempty,dive"`
}

type UpdateCourtRequest struct {
	CourtName         *string  `json:"court_name" validate:"omitempty,min=1,max=100"`
	CourtClubName     *string  `json:"court_club_name" validate:"omitempty,max=150"`
	CourtType         *string  `json:"court_type" validate:"omitempty,oneof=single double"`
	CourtHourlyRate   *float64 `json:"court_hourly_rate" validate:"omitempty,gte=0"`
	CourtIsActive     *bool    `json:"court_is_active"`
	CourtColor        *string  `json:"court_color" validate:"omitempty,max=20"`
	CourtAvatarURL    *string  `json:"court_avatar_url" validate:"omitempty,url"`
	CourtDisplayOrder *int     `json:"court_display_order"`
}

// ============================
// Converters
// ============================

func ToCourtPricingDTO(m model.CourtPricingModel) CourtPricingDTO {
	return CourtPricingDTO{
		CourtPricingID:           m.CourtPricingID.String(),
		CourtPricingCourtID:      m.CourtPricingCourtID.String(),
		CourtPricingName:         m.CourtPricingName,
		CourtPricingDayType:      m.CourtPricingDayType,
		CourtPricingStartTime:    m.CourtPricingStartTime,
		CourtPricingEndTime:      m.CourtPricingEndTime,
		CourtPricingPricePerHour: m.CourtPricingPricePerHour,
		CourtPricingIsActive:     m.CourtPricingIsActive,
		CourtPricingDisplayOrder: m.CourtPricingDisplayOrder,
		CourtPricingCreatedAt:    m.CourtPricingCreatedAt,
		CourtPricingUpdatedAt:    m.CourtPricingUpdatedAt,
	}
}

func ToCourtDTO(m model.CourtModel) CourtDTO {
	pricing := make([]CourtPricingDTO, 0, len(m.Pricing))
	for _, p := range m.Pricing {
		pricing = append(pricing, ToCourtPricingDTO(p))
	}
	return CourtDTO{
		CourtID:           m.CourtID.String(),
		CourtUserID:       m.CourtUserID.String(),
		CourtName:         m.CourtName,
		CourtClubName:     m.CourtClubName,
		CourtType:         m.CourtType,
		CourtHourlyRate:   m.CourtHourlyRate,
		CourtIsActive:     m.CourtIsActive,
		CourtColor:        m.CourtColor,
		CourtAvatarURL:    m.CourtAvatarURL,
		CourtDisplayOrder: m.CourtDisplayOrder,
		CourtCreatedAt:    m.CourtCreatedAt,
		Pricing:           pricing,
	}
}

func (r CourtPricingRequest) ToModel() model.CourtPricingModel {
	isActive := true
	if r.CourtPricingIsActive != nil {
		isActive = *r.CourtPricingIsActive
	}
	displayOrder := 0
	if r.CourtPricingDisplayOrder != nil {
		displayOrder = *r.CourtPricingDisplayOrder
	}
	return model.CourtPricingModel{
		CourtPricingName:         r.CourtPricingName,
		CourtPricingDayType:      r.CourtPricingDayType,
		CourtPricingStartTime:    r.CourtPricingStartTime,
		CourtPricingEndTime:      r.CourtPricingEndTime,
		CourtPricingPricePerHour: r.CourtPricingPricePerHour,
		CourtPricingIsActive:     isActive,
		CourtPricingDisplayOrder: displayOrder,
	}
}
