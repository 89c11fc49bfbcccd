package pricecalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_RecommendationScenario(t *testing.T) {
	// 1.5h on a 100/h court, 1-4 players, trainer wants 200/h
	in := Inputs{
		CourtCostPerHour:    100,
		DurationHours:       1.5,
		MinParticipants:     1,
		MaxParticipants:     4,
		TargetProfitPerHour: 200,
	}
	out := Calculate(in)

	assert.Equal(t, 2.5, out.AvgParticipants)
	assert.Equal(t, 150.0, out.CourtCostTotal)
	assert.Equal(t, 300.0, out.TargetRevenueTotal)
	assert.Equal(t, 180.0, out.RecommendedPerPerson)
	// The recommendation is advisory; the charged price stays what was given
	assert.Zero(t, out.PricePerPerson)
}

func TestCalculate_ZeroPriceIsARealPrice(t *testing.T) {
	// A free session still pays for the court: zero revenue, the full court
	// cost as loss
	in := Inputs{
		CourtCostPerHour:    100,
		DurationHours:       1.5,
		MinParticipants:     1,
		MaxParticipants:     4,
		TargetProfitPerHour: 200,
		PricePerPerson:      0,
	}
	out := Calculate(in)

	assert.Equal(t, 180.0, out.RecommendedPerPerson)
	assert.Zero(t, out.RevenueFromClients)
	assert.Equal(t, 150.0, out.TotalPriceForSession)
	assert.Equal(t, -150.0, out.TrainerProfitGross)
	assert.InDelta(t, -100.0, out.TrainerProfitPerHour, 0.001)
}

func TestCalculate_BreakdownAtGivenPrice(t *testing.T) {
	in := Inputs{
		CourtCostPerHour:    100,
		DurationHours:       1.5,
		MinParticipants:     1,
		MaxParticipants:     4,
		TargetProfitPerHour: 200,
		PricePerPerson:      100,
	}
	out := Calculate(in)

	assert.Equal(t, 250.0, out.RevenueFromClients)
	assert.Equal(t, 400.0, out.TotalPriceForSession)
	assert.Equal(t, 100.0, out.TrainerProfitGross)
	assert.InDelta(t, 66.67, out.TrainerProfitPerHour, 0.01)
}

func TestCalculate_NegativeProfitIsReported(t *testing.T) {
	// Charging 20/person on a court that costs more than the revenue
	in := Inputs{
		CourtCostPerHour:    100,
		DurationHours:       1.5,
		MinParticipants:     1,
		MaxParticipants:     4,
		TargetProfitPerHour: 200,
		PricePerPerson:      20,
	}
	out := Calculate(in)

	assert.Equal(t, 50.0, out.RevenueFromClients)
	assert.Equal(t, -100.0, out.TrainerProfitGross)
	assert.InDelta(t, -66.67, out.TrainerProfitPerHour, 0.01)
}

func TestCalculate_ZeroDurationGuard(t *testing.T) {
	in := Inputs{
		CourtCostPerHour:    100,
		MinParticipants:     2,
		MaxParticipants:     2,
		TargetProfitPerHour: 200,
		PricePerPerson:      50,
	}
	out := Calculate(in)

	assert.Zero(t, out.CourtCostTotal)
	assert.Zero(t, out.TrainerProfitPerHour)
}

func TestCalculate_ZeroParticipantsGuard(t *testing.T) {
	out := Calculate(Inputs{
		CourtCostPerHour:    100,
		DurationHours:       1,
		TargetProfitPerHour: 200,
	})
	assert.Zero(t, out.RecommendedPerPerson)
	assert.Zero(t, out.RevenueFromClients)
}

func TestRecommend_MonotonicInParticipants(t *testing.T) {
	// More players means each one pays the same or less
	prev := 0.0
	for max := 1; max <= 12; max++ {
		rec := Recommend(Inputs{
			CourtCostPerHour:    120,
			DurationHours:       2,
			MinParticipants:     1,
			MaxParticipants:     max,
			TargetProfitPerHour: 180,
		})
		if max > 1 {
			assert.LessOrEqual(t, rec, prev, "max=%d", max)
		}
		prev = rec
	}
}

func TestRecommend_MonotonicInTargetProfit(t *testing.T) {
	prev := -1.0
	for target := 0.0; target <= 500; target += 50 {
		rec := Recommend(Inputs{
			CourtCostPerHour:    100,
			DurationHours:       1.5,
			MinParticipants:     2,
			MaxParticipants:     4,
			TargetProfitPerHour: target,
		})
		assert.GreaterOrEqual(t, rec, prev, "target=%v", target)
		prev = rec
	}
}

func TestRecommend_MonotonicInCourtCost(t *testing.T) {
	prev := -1.0
	for cost := 0.0; cost <= 300; cost += 25 {
		rec := Recommend(Inputs{
			CourtCostPerHour:    cost,
			DurationHours:       1.5,
			MinParticipants:     2,
			MaxParticipants:     4,
			TargetProfitPerHour: 180,
		})
		assert.GreaterOrEqual(t, rec, prev, "cost=%v", cost)
		prev = rec
	}
}

func TestRecommend_MonotonicInDuration(t *testing.T) {
	prev := -1.0
	for duration := 0.5; duration <= 4; duration += 0.5 {
		rec := Recommend(Inputs{
			CourtCostPerHour:    100,
			DurationHours:       duration,
			MinParticipants:     2,
			MaxParticipants:     4,
			TargetProfitPerHour: 180,
		})
		assert.GreaterOrEqual(t, rec, prev, "duration=%v", duration)
		prev = rec
	}
}

func TestCalculate_AvgWithinBounds(t *testing.T) {
	for min := 1; min <= 6; min++ {
		for max := min; max <= 8; max++ {
			out := Calculate(Inputs{
				CourtCostPerHour:    90,
				DurationHours:       1,
				MinParticipants:     min,
				MaxParticipants:     max,
				TargetProfitPerHour: 100,
			})
			assert.GreaterOrEqual(t, out.AvgParticipants, float64(min))
			assert.LessOrEqual(t, out.AvgParticipants, float64(max))
		}
	}
}

func TestCalculate_ChargingRecommendationMeetsTarget(t *testing.T) {
	// Charging exactly the recommendation lands within one rounding unit
	// per participant of the target profit
	in := Inputs{
		CourtCostPerHour:    100,
		DurationHours:       1.5,
		MinParticipants:     1,
		MaxParticipants:     4,
		TargetProfitPerHour: 200,
	}
	in.PricePerPerson = Recommend(in)
	out := Calculate(in)
	assert.InDelta(t, in.TargetProfitPerHour*in.DurationHours, out.TrainerProfitGross, out.AvgParticipants)
}

func TestRoundToCurrencyUnit(t *testing.T) {
	assert.Equal(t, 180.0, RoundToCurrencyUnit(179.5))
	assert.Equal(t, 179.0, RoundToCurrencyUnit(179.49))
	assert.Equal(t, -1.0, RoundToCurrencyUnit(-0.5))
	assert.Equal(t, 0.0, RoundToCurrencyUnit(0.4))
}
