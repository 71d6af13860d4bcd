package impact

// Breakdown is the per-meal kg CO2e contribution of each component.
type Breakdown struct {
	RedMeat    float64 `json:"red_meat"`
	BrightMeat float64 `json:"bright_meat"`
	Fish       float64 `json:"fish"`
	Vegetarian float64 `json:"vegetarian"`
	Vegetables float64 `json:"vegetables"`
	Carbs      float64 `json:"carbs"`
	Transport  float64 `json:"transport"`
	Waste      float64 `json:"waste"`
}

// Component is one named entry of a Breakdown.
type Component struct {
	Name   string  `json:"name"`
	KgCO2e float64 `json:"kg_co2e"`
}

// Components returns the breakdown entries in a fixed order.
func (b Breakdown) Components() []Component {
	return []Component{
		{"red_meat", b.RedMeat},
		{"bright_meat", b.BrightMeat},
		{"fish", b.Fish},
		{"vegetarian", b.Vegetarian},
		{"vegetables", b.Vegetables},
		{"carbs", b.Carbs},
		{"transport", b.Transport},
		{"waste", b.Waste},
	}
}

// Map returns the breakdown keyed by component name.
func (b Breakdown) Map() map[string]float64 {
	out := make(map[string]float64, 8)
	for _, c := range b.Components() {
		out[c.Name] = c.KgCO2e
	}
	return out
}

// OrganicImpact summarises how the organic shares moved per-meal emissions.
type OrganicImpact struct {
	RedMeatSaved        float64 `json:"red_meat_saved"`
	BrightMeatIncreased float64 `json:"bright_meat_increased"`
	VegetablesSaved     float64 `json:"vegetables_saved"`
	// NetEffect is adjusted minus baseline; negative means organic lowered emissions.
	NetEffect      float64 `json:"net_effect"`
	Recommendation string  `json:"recommendation"`
}

// WasteImpact is the per-meal emission cost of food waste.
type WasteImpact struct {
	Preparation        float64 `json:"preparation_waste"`
	Plate              float64 `json:"plate_waste"`
	Buffet             float64 `json:"buffet_waste"`
	Production         float64 `json:"production_waste"`
	Disposal           float64 `json:"disposal_emission"`
	TotalAdded         float64 `json:"total_added"`
	PotentialReduction float64 `json:"potential_reduction"`
}

// RecommendationCategory groups recommendations by the lever they pull.
type RecommendationCategory string

// Recommendation categories.
const (
	CategoryMeatDistribution RecommendationCategory = "meat_distribution"
	CategoryWasteReduction   RecommendationCategory = "waste_reduction"
	CategoryOrganicStrategy  RecommendationCategory = "organic_strategy"
	CategorySeasonality      RecommendationCategory = "seasonality"
	CategoryVegetarian       RecommendationCategory = "vegetarian"
)

// Difficulty is how hard a recommendation is to put in place.
type Difficulty string

// Difficulty levels.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Recommendation is one ranked intervention.
type Recommendation struct {
	Priority           int                    `json:"priority"`
	Category           RecommendationCategory `json:"category"`
	Title              string                 `json:"title"`
	Description        string                 `json:"description"`
	CO2SavingPerMeal   float64                `json:"co2_saving_per_meal"`
	AnnualSavingTons   float64                `json:"annual_saving_tons"`
	Difficulty         Difficulty             `json:"difficulty"`
	CostImpact         string                 `json:"cost_impact"`
	ImplementationTime string                 `json:"implementation_time"`
	// Suggestions are concrete items from the reference dataset, such as
	// plant-based substitutes or waste reduction measures.
	Suggestions []string `json:"suggestions,omitempty"`
}

// CalculationResult is the outcome of one impact calculation.
type CalculationResult struct {
	PerMealKg         float64          `json:"per_meal_kg"`
	AnnualTons        float64          `json:"annual_tons"`
	TotalMealsAnnual  float64          `json:"total_meals_annual"`
	Breakdown         Breakdown        `json:"breakdown"`
	Recommendations   []Recommendation `json:"recommendations"`
	OrganicImpact     OrganicImpact    `json:"organic_impact"`
	WasteImpact       WasteImpact      `json:"waste_impact"`
	SeasonalBenefitKg float64          `json:"seasonal_benefit_kg"`
	CostSavings       float64          `json:"cost_savings"`
	Inputs            Inputs           `json:"inputs"`
}
