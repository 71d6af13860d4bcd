package impact

import (
	"fmt"
	"sort"

	"github.com/rshade/canteenco2/internal/factors"
)

// MaxRecommendations caps the ranked recommendation list.
const MaxRecommendations = 5

// Rule thresholds and saving constants.
const (
	redMeatThreshold       = 20.0
	redMeatTarget          = 15.0
	redMeatSwapFactor      = 20.0
	wasteThreshold         = 20.0
	organicMeatThreshold   = 50.0
	seasonalThreshold      = 50.0
	seasonalTarget         = 60.0
	seasonalSavingFactor   = 0.3
	vegetarianThreshold    = 30.0
	vegetarianSwapFactor   = 5.0
	plantDayWeeklyFraction = 0.20
	maxSuggestions         = 3
)

// ruleInput is what every recommendation rule sees.
type ruleInput struct {
	in      Inputs
	base    foodEmissions
	organic OrganicImpact
	waste   WasteImpact
	store   *factors.Store
}

// annualScale converts a per-meal saving into tons per year. It uses the
// full headcount, not attendance-adjusted meals.
func (r ruleInput) annualScale() float64 {
	return float64(r.in.Employees) * float64(r.in.OperatingDays) / 1000
}

type rule func(ruleInput) (Recommendation, bool)

//nolint:gochecknoglobals // fixed rule table
var rules = []rule{
	redMeatRule,
	wasteRule,
	organicRule,
	seasonalityRule,
	vegetarianRule,
}

// recommend evaluates every rule, ranks the results by annual saving and
// keeps the top MaxRecommendations with priorities 1..N.
func recommend(r ruleInput) []Recommendation {
	recs := make([]Recommendation, 0, len(rules))
	for _, fn := range rules {
		if rec, ok := fn(r); ok {
			recs = append(recs, rec)
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].AnnualSavingTons > recs[j].AnnualSavingTons
	})
	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	for i := range recs {
		recs[i].Priority = i + 1
	}
	return recs
}

func redMeatRule(r ruleInput) (Recommendation, bool) {
	red := r.in.MeatDistribution.RedMeatPercent
	if red <= redMeatThreshold {
		return Recommendation{}, false
	}
	saving := (red - redMeatTarget) / 100 * (r.in.PortionSizes.ProteinGram / 1000) * redMeatSwapFactor
	return Recommendation{
		Category:           CategoryMeatDistribution,
		Title:              "Reduce red meat to at most 15%",
		Description:        fmt.Sprintf("Replace %d%% of beef with chicken or plant-based protein", int(red-redMeatTarget)),
		CO2SavingPerMeal:   saving,
		AnnualSavingTons:   saving * r.annualScale(),
		Difficulty:         DifficultyMedium,
		CostImpact:         "Savings",
		ImplementationTime: "2-4 weeks",
		Suggestions:        alternativeNames(r.store, "Oksekød"),
	}, true
}

func wasteRule(r ruleInput) (Recommendation, bool) {
	if r.in.Waste.Total() <= wasteThreshold {
		return Recommendation{}, false
	}
	saving := r.waste.PotentialReduction
	return Recommendation{
		Category:           CategoryWasteReduction,
		Title:              "Implement food waste reduction",
		Description:        "Start with portion control (S/M/L) and pre-ordering",
		CO2SavingPerMeal:   saving,
		AnnualSavingTons:   saving * r.annualScale(),
		Difficulty:         DifficultyEasy,
		CostImpact:         "Large savings",
		ImplementationTime: "1-2 weeks",
		Suggestions:        tipTitles(r.store),
	}, true
}

func organicRule(r ruleInput) (Recommendation, bool) {
	if r.in.OrganicPercent.Meat <= organicMeatThreshold || r.base.BrightMeat <= 0 {
		return Recommendation{}, false
	}
	saving := r.organic.BrightMeatIncreased
	return Recommendation{
		Category: CategoryOrganicStrategy,
		Title:    "Rethink the organic strategy for bright meat",
		Description: "Organic pork and chicken have a HIGHER CO2 footprint. " +
			"Focus the organic budget on vegetables and beef.",
		CO2SavingPerMeal:   saving,
		AnnualSavingTons:   saving * r.annualScale(),
		Difficulty:         DifficultyEasy,
		CostImpact:         "Neutral to savings",
		ImplementationTime: "1 week",
	}, true
}

func seasonalityRule(r ruleInput) (Recommendation, bool) {
	seasonal := r.in.SeasonalProduce
	if seasonal >= seasonalThreshold {
		return Recommendation{}, false
	}
	saving := (seasonalTarget - seasonal) / 100 * seasonalSavingFactor
	return Recommendation{
		Category: CategorySeasonality,
		Title:    "Raise seasonal produce to 60%+",
		Description: "Avoid greenhouse tomatoes in winter. " +
			"Use root vegetables, cabbage and stored produce.",
		CO2SavingPerMeal:   saving,
		AnnualSavingTons:   saving * r.annualScale(),
		Difficulty:         DifficultyMedium,
		CostImpact:         "Savings",
		ImplementationTime: "4-6 weeks",
	}, true
}

func vegetarianRule(r ruleInput) (Recommendation, bool) {
	veg := r.in.MeatDistribution.VegetarianPercent
	if veg >= vegetarianThreshold {
		return Recommendation{}, false
	}
	saving := (vegetarianThreshold - veg) / 100 * (r.in.PortionSizes.ProteinGram / 1000) * vegetarianSwapFactor
	return Recommendation{
		Category:           CategoryVegetarian,
		Title:              `Introduce a weekly "Plant-based Friday"`,
		Description:        "One fixed vegetarian day a week can cut weekly emissions by 20%",
		CO2SavingPerMeal:   saving,
		AnnualSavingTons:   saving * r.annualScale() * plantDayWeeklyFraction,
		Difficulty:         DifficultyMedium,
		CostImpact:         "Large savings",
		ImplementationTime: "2 weeks",
		Suggestions:        alternativeNames(r.store, "kød"),
	}, true
}

func alternativeNames(s *factors.Store, meat string) []string {
	if s == nil {
		return nil
	}
	var out []string
	for _, a := range s.PlantAlternatives(meat) {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, a.Alternative)
	}
	return out
}

func tipTitles(s *factors.Store) []string {
	if s == nil {
		return nil
	}
	var out []string
	for _, t := range s.WasteReductionTips("") {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, t.Title)
	}
	return out
}

// costSavings converts the returned recommendations into currency units.
func costSavings(recs []Recommendation) float64 {
	var tons float64
	for _, r := range recs {
		tons += r.AnnualSavingTons
	}
	return tons * costPerTon
}

// costPerTon is the estimated food cost saved per ton CO2e avoided.
const costPerTon = 2500.0
