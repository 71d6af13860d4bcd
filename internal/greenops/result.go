package greenops

import (
	"github.com/rshade/canteenco2/internal/impact"
	"github.com/rshade/canteenco2/internal/sourcing"
)

// RoundResult returns a copy of r rounded for display: kg values to 2
// decimals, tons to 1 and currency to whole units. r is not modified.
func RoundResult(r impact.CalculationResult) impact.CalculationResult {
	out := r

	out.PerMealKg = RoundKg(r.PerMealKg)
	out.AnnualTons = RoundTons(r.AnnualTons)
	out.TotalMealsAnnual = Round(r.TotalMealsAnnual, 0)
	out.SeasonalBenefitKg = RoundKg(r.SeasonalBenefitKg)
	out.CostSavings = RoundCurrency(r.CostSavings)

	b := r.Breakdown
	out.Breakdown = impact.Breakdown{
		RedMeat:    RoundKg(b.RedMeat),
		BrightMeat: RoundKg(b.BrightMeat),
		Fish:       RoundKg(b.Fish),
		Vegetarian: RoundKg(b.Vegetarian),
		Vegetables: RoundKg(b.Vegetables),
		Carbs:      RoundKg(b.Carbs),
		Transport:  RoundKg(b.Transport),
		Waste:      RoundKg(b.Waste),
	}

	o := r.OrganicImpact
	out.OrganicImpact = impact.OrganicImpact{
		RedMeatSaved:        RoundKg(o.RedMeatSaved),
		BrightMeatIncreased: RoundKg(o.BrightMeatIncreased),
		VegetablesSaved:     RoundKg(o.VegetablesSaved),
		NetEffect:           RoundKg(o.NetEffect),
		Recommendation:      o.Recommendation,
	}

	w := r.WasteImpact
	out.WasteImpact = impact.WasteImpact{
		Preparation:        RoundKg(w.Preparation),
		Plate:              RoundKg(w.Plate),
		Buffet:             RoundKg(w.Buffet),
		Production:         RoundKg(w.Production),
		Disposal:           RoundKg(w.Disposal),
		TotalAdded:         RoundKg(w.TotalAdded),
		PotentialReduction: RoundKg(w.PotentialReduction),
	}

	out.Recommendations = make([]impact.Recommendation, len(r.Recommendations))
	for i, rec := range r.Recommendations {
		rec.CO2SavingPerMeal = RoundKg(rec.CO2SavingPerMeal)
		rec.AnnualSavingTons = RoundTons(rec.AnnualSavingTons)
		rec.Suggestions = append([]string(nil), rec.Suggestions...)
		out.Recommendations[i] = rec
	}

	return out
}

// RoundSourcing returns a copy of recs with CO2 rounded to 2 decimals.
func RoundSourcing(recs []sourcing.Recommendation) []sourcing.Recommendation {
	out := make([]sourcing.Recommendation, len(recs))
	for i, r := range recs {
		r.CO2 = RoundKg(r.CO2)
		out[i] = r
	}
	return out
}
