// Package impact computes the climate impact of a canteen and ranks
// interventions by expected CO2e saving.
//
// A Calculator is a pure function of its inputs: it keeps no state between
// calls and can be shared freely across goroutines. All arithmetic is
// float64 and nothing is rounded; rounding for display happens in
// internal/greenops.
package impact

import (
	"context"
	"time"

	"github.com/rshade/canteenco2/internal/factors"
	"github.com/rshade/canteenco2/internal/logging"
)

// Calculator runs impact calculations.
type Calculator struct {
	store *factors.Store
}

// NewCalculator returns a Calculator. store supplies concrete suggestions
// (plant-based alternatives, waste tips) for recommendations and may be nil.
func NewCalculator(store *factors.Store) *Calculator {
	return &Calculator{store: store}
}

// Calculate validates params and computes per-meal and annual emissions,
// the emission breakdown and ranked recommendations. It fails only with a
// *ValidationError, before any work is done.
func (c *Calculator) Calculate(ctx context.Context, params CanteenParameters) (CalculationResult, error) {
	start := time.Now()
	log := logging.FromContext(ctx).With().
		Str("component", "impact").
		Str("operation", "Calculate").
		Logger()

	in, err := params.Resolve()
	if err != nil {
		log.Debug().Ctx(ctx).Err(err).Msg("rejected canteen parameters")
		return CalculationResult{}, err
	}

	result := c.calculate(in)

	log.Debug().Ctx(ctx).
		Int("employees", in.Employees).
		Float64("per_meal_kg", result.PerMealKg).
		Float64("annual_tons", result.AnnualTons).
		Int("recommendations", len(result.Recommendations)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("impact calculated")

	return result, nil
}

func (c *Calculator) calculate(in Inputs) CalculationResult {
	totalMeals := float64(in.Employees) * in.AttendanceRate * in.MealsPerDay * float64(in.OperatingDays)

	base := baseFoodEmissions(in)
	adjusted, organic := applyOrganic(base, in.OrganicPercent)
	transport := transportEmissions(in)
	waste := wasteImpact(adjusted.total(), in.Waste)

	perMeal := adjusted.total() + transport + waste.TotalAdded

	recs := recommend(ruleInput{
		in:      in,
		base:    base,
		organic: organic,
		waste:   waste,
		store:   c.store,
	})

	return CalculationResult{
		PerMealKg:        perMeal,
		AnnualTons:       perMeal * totalMeals / 1000,
		TotalMealsAnnual: totalMeals,
		Breakdown: Breakdown{
			RedMeat:    adjusted.RedMeat,
			BrightMeat: adjusted.BrightMeat,
			Fish:       adjusted.Fish,
			Vegetarian: adjusted.Vegetarian,
			Vegetables: adjusted.Vegetables,
			Carbs:      adjusted.Carbs,
			Transport:  transport,
			Waste:      waste.TotalAdded,
		},
		Recommendations:   recs,
		OrganicImpact:     organic,
		WasteImpact:       waste,
		SeasonalBenefitKg: seasonalBenefit(in.SeasonalProduce),
		CostSavings:       costSavings(recs),
		Inputs:            in,
	}
}
