// Package pricecalc computes the per-person price recommendation for a
// training session on a rented court. Pure arithmetic, no I/O, never errors:
// callers validate inputs at the HTTP boundary.
package pricecalc

import "math"

// Inputs for one recommendation. PricePerPerson is the price the trainer
// intends to charge; zero or negative values flow through untouched, the
// HTTP layer rejects them before they get here.
type Inputs struct {
	CourtCostPerHour    float64
	DurationHours       float64
	MinParticipants     int
	MaxParticipants     int
	TargetProfitPerHour float64
	PricePerPerson      float64
}

// Breakdown is the full calculation result. TrainerProfitGross can be
// negative; that is a reported state, not an error.
type Breakdown struct {
	AvgParticipants      float64 `json:"avg_participants"`
	CourtCostTotal       float64 `json:"court_cost_total"`
	TargetRevenueTotal   float64 `json:"target_revenue_total"`
	RecommendedPerPerson float64 `json:"recommended_per_person"`
	PricePerPerson       float64 `json:"price_per_person"`
	RevenueFromClients   float64 `json:"revenue_from_clients"`
	TotalPriceForSession float64 `json:"total_price_for_session"`
	TrainerProfitGross   float64 `json:"trainer_profit_gross"`
	TrainerProfitPerHour float64 `json:"trainer_profit_per_hour"`
}

// RoundToCurrencyUnit rounds half away from zero to the nearest whole
// currency unit. Kept as a named function so the rounding rule stays pinned
// in one place.
func RoundToCurrencyUnit(v float64) float64 {
	return math.Round(v)
}

// Recommend returns only the recommended per-person price for the given
// inputs, ignoring Inputs.PricePerPerson.
func Recommend(in Inputs) float64 {
	avg := float64(in.MinParticipants+in.MaxParticipants) / 2
	if avg <= 0 {
		return 0
	}
	courtCost := in.CourtCostPerHour * in.DurationHours
	targetRevenue := in.TargetProfitPerHour * in.DurationHours
	return RoundToCurrencyUnit((courtCost + targetRevenue) / avg)
}

// Calculate produces the full breakdown at the charged price. The
// recommendation is advisory: a zero PricePerPerson means zero revenue and
// the court cost as a straight loss, not "charge the recommendation".
func Calculate(in Inputs) Breakdown {
	avg := float64(in.MinParticipants+in.MaxParticipants) / 2
	courtCost := in.CourtCostPerHour * in.DurationHours
	targetRevenue := in.TargetProfitPerHour * in.DurationHours

	recommended := 0.0
	if avg > 0 {
		recommended = RoundToCurrencyUnit((courtCost + targetRevenue) / avg)
	}

	price := in.PricePerPerson
	revenue := price * avg
	gross := revenue - courtCost

	perHour := 0.0
	if in.DurationHours > 0 {
		perHour = gross / in.DurationHours
	}

	return Breakdown{
		AvgParticipants:      avg,
		CourtCostTotal:       courtCost,
		TargetRevenueTotal:   targetRevenue,
		RecommendedPerPerson: recommended,
		PricePerPerson:       price,
		RevenueFromClients:   revenue,
		TotalPriceForSession: courtCost + revenue,
		TrainerProfitGross:   gross,
		TrainerProfitPerHour: perHour,
	}
}
