package dto

import (
	"time"

	"padelku_backend/internals/features/services/model"
	"padelku_backend/internals/features/services/pricecalc"
)

// ============================
// Response DTOs
// ============================

type ServiceDTO struct {
	ServiceID                  string    `json:"service_id"`
	ServiceUserID              string    `json:"service_user_id"`
	ServiceName                string    `json:"service_name"`
	ServiceDescription         *string   `json:"service_description"`
	ServiceType                string    `json:"service_type"`
	ServiceDurationHours       float64   `json:"service_duration_hours"`
	ServiceMinParticipants     int       `json:"service_min_participants"`
	ServiceMaxParticipants     int       `json:"service_max_participants"`
	ServicePricePerPerson      float64   `json:"service_price_per_person"`
	ServiceTargetProfitPerHour float64   `json:"service_target_profit_per_hour"`
	ServiceSessionsCount       *int      `json:"service_sessions_count"`
	ServiceIsActive            bool      `json:"service_is_active"`
	ServiceColor               *string   `json:"service_color"`
	ServiceCreatedAt           time.Time `json:"service_created_at"`
	ServiceUpdatedAt           time.Time `json:"service_updated_at"`
}

// QuoteResponse wraps the calculator breakdown with the rate that fed it and
// the warning flags the dashboard renders.
type QuoteResponse struct {
	CourtCostPerHour float64             `json:"court_cost_per_hour"`
	Breakdown        pricecalc.Breakdown `json:"breakdown"`
	NoRateConfigured bool                `json:"no_rate_configured"`
	ProfitWarning    bool                `json:"profit_warning"`
}

// ============================
// Request DTOs
// ============================

// QuoteRequest feeds the calculator. The court cost comes either from
// court_cost_per_hour directly or from a catalog lookup via court_id
// (+ court_pricing_id picking the slot).
type QuoteRequest struct {
	CourtCostPerHour *float64 `json:"court_cost_per_hour" validate:"omitempty,gte=0"`
	CourtID          *string  `json:"court_id" validate:"omitempty,uuid4"`
	CourtPricingID   *string  `json:"court_pricing_id" validate:"omitempty,uuid4"`

	DurationHours       float64  `json:"duration_hours" validate:"required,gt=0"`
	MinParticipants     int      `json:"min_participants" validate:"required,min=1"`
	MaxParticipants     int      `json:"max_participants" validate:"required,gtefield=MinParticipants"`
	TargetProfitPerHour float64  `json:"target_profit_per_hour" validate:"gte=0"`
	PricePerPerson      *float64 `json:"price_per_person" validate:"omitempty,gte=0"`
}

type CreateServiceRequest struct {
	ServiceName        string  `json:"service_name" validate:"required,min=1,max=100"`
	ServiceDescription *string `json:"service_description"`
	ServiceType        string  `json:"service_type" validate:"omitempty,oneof=single package camp"`

	ServiceDurationHours       float64 `json:"service_duration_hours" validate:"required,gt=0"`
	ServiceMinParticipants     int     `json:"service_min_participants" validate:"required,min=1"`
	ServiceMaxParticipants     int     `json:"service_max_participants" validate:"required,gtefield=ServiceMinParticipants"`
	ServicePricePerPerson      float64 `json:"service_price_per_person" validate:"gte=0"`
	ServiceTargetProfitPerHour float64 `json:"service_target_profit_per_hour" validate:"gte=0"`
	ServiceSessionsCount       *int    `json:"service_sessions_count" validate:"omitempty,min=1"`

	ServiceIsActive *bool   `json:"service_is_active"`
	ServiceColor    *string `json:"service_color" validate:"omitempty,max=20"`

	// Advisory quote context, not persisted
	CourtID          *string  `json:"court_id" validate:"omitempty,uuid4"`
	CourtPricingID   *string  `json:"court_pricing_id" validate:"omitempty,uuid4"`
	CourtCostPerHour *float64 `json:"court_cost_per_hour" validate:"omitempty,gte=0"`
}

type UpdateServiceRequest struct {
	ServiceName        *string `json:"service_name" validate:"omitempty,min=1,max=100"`
	ServiceDescription *string `json:"service_description"`
	ServiceType        *string `json:"service_type" validate:"omitempty,oneof=single package camp"`

	ServiceDurationHours       *float64 `json:"service_duration_hours" validate:"omitempty,gt=0"`
	ServiceMinParticipants     *int     `json:"service_min_participants" validate:"omitempty,min=1"`
	ServiceMaxParticipants     *int     `json:"service_max_participants" validate:"omitempty,min=1"`
	ServicePricePerPerson      *float64 `json:"service_price_per_person" validate:"omitempty,gte=0"`
	ServiceTargetProfitPerHour *float64 `json:"service_target_profit_per_hour" validate:"omitempty,gte=0"`
	ServiceSessionsCount       *int     `json:"service_sessions_count" validate:"omitempty,min=1"`

	ServiceIsActive *bool   `json:"service_is_active"`
	ServiceColor    *string `json:"service_color" validate:"omitempty,max=20"`
}

// ============================
// Converters
// ============================

func ToServiceDTO(m model.ServiceModel) ServiceDTO {
	return ServiceDTO{
		ServiceID:                  m.ServiceID.String(),
		ServiceUserID:              m.ServiceUserID.String(),
		ServiceName:                m.ServiceName,
		ServiceDescription:         m.ServiceDescription,
		ServiceType:                m.ServiceType,
		ServiceDurationHours:       m.ServiceDurationHours,
		ServiceMinParticipants:     m.ServiceMinParticipants,
		ServiceMaxParticipants:     m.ServiceMaxParticipants,
		ServicePricePerPerson:      m.ServicePricePerPerson,
		ServiceTargetProfitPerHour: m.ServiceTargetProfitPerHour,
		ServiceSessionsCount:       m.ServiceSessionsCount,
		ServiceIsActive:            m.ServiceIsActive,
		ServiceColor:               m.ServiceColor,
		ServiceCreatedAt:           m.ServiceCreatedAt,
		ServiceUpdatedAt:           m.ServiceUpdatedAt,
	}
}
