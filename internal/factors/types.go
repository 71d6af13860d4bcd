// Package factors holds the emission factor reference dataset.
//
// The dataset (per-item CO2e factors, organic comparisons, transport
// factors, seasonal availability, plant-based alternatives and waste
// reduction tips, reference canteens) is loaded once into an immutable Store and queried many
// times. Stores are safe for concurrent use because nothing mutates them
// after construction.
package factors

// Category classifies a food item for emission purposes.
type Category string

// Food categories used by the reference dataset.
const (
	CategoryRedMeat      Category = "red_meat"
	CategoryBrightMeat   Category = "bright_meat"
	CategoryFish         Category = "fish"
	CategoryDairy        Category = "dairy"
	CategoryEggs         Category = "eggs"
	CategoryLegumes      Category = "legumes"
	CategorySoyProducts  Category = "soy_products"
	CategoryPlantProtein Category = "plant_protein"
	CategoryVegetables   Category = "vegetables"
	CategoryGrains       Category = "grains"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryRedMeat, CategoryBrightMeat, CategoryFish, CategoryDairy, CategoryEggs,
		CategoryLegumes, CategorySoyProducts, CategoryPlantProtein, CategoryVegetables, CategoryGrains:
		return true
	default:
		return false
	}
}

// EmissionFactor is the CO2e intensity of one food item in one variant.
type EmissionFactor struct {
	FoodItem   string   `json:"food_item"`
	Category   Category `json:"category"`
	CO2ePerKg  float64  `json:"co2e_per_kg"`
	IsOrganic  bool     `json:"is_organic"`
	Source     string   `json:"source,omitempty"`
	Year       int      `json:"year,omitempty"`
	Confidence string   `json:"confidence,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// FactorKey identifies an emission factor. Items are keyed by name and
// variant together, so names may contain any character.
type FactorKey struct {
	Item    string
	Organic bool
}

// Key returns the lookup key for f.
func (f EmissionFactor) Key() FactorKey {
	return FactorKey{Item: f.FoodItem, Organic: f.IsOrganic}
}

// CategoryInfo describes a food category.
type CategoryInfo struct {
	Name              Category `json:"name"`
	Description       string   `json:"description"`
	ColorCode         string   `json:"color_code"`
	AvgEmissionFactor float64  `json:"avg_emission_factor"`
	ImpactLevel       string   `json:"impact_level"`
}

// Comparison contrasts the organic and conventional variants of an item.
type Comparison struct {
	FoodItem          string  `json:"food_item"`
	ConventionalCO2   float64 `json:"conventional_co2"`
	OrganicCO2        float64 `json:"organic_co2"`
	DifferencePercent float64 `json:"difference_percent"`
	Explanation       string  `json:"explanation"`
	Recommendation    string  `json:"recommendation"`
	// IsBetter is true when organic has the lower footprint.
	IsBetter bool `json:"is_better"`
}

// TransportFactor is the emission intensity of one transport mode.
type TransportFactor struct {
	Method        string  `json:"method"`
	KmRange       string  `json:"km_range"`
	KgCO2PerTonKm float64 `json:"kg_co2_per_ton_km"`
	Description   string  `json:"description"`
}

// SeasonalProduce records which months an item is in season domestically.
// Months is indexed 0 (January) to 11 (December).
type SeasonalProduce struct {
	FoodItem              string   `json:"food_item"`
	Months                [12]bool `json:"months"`
	StoragePossible       bool     `json:"storage_possible"`
	ClimateBenefitPercent float64  `json:"climate_benefit_percent"`
}

// Alternative is a plant-based substitute for a meat product.
type Alternative struct {
	MeatProduct      string  `json:"meat_product"`
	Alternative      string  `json:"alternative"`
	Category         string  `json:"category"`
	CO2SavingPercent float64 `json:"co2_saving_percent"`
	ProteinPer100g   float64 `json:"protein_per_100g"`
	TasteSimilarity  string  `json:"taste_similarity"`
	CookingMethod    string  `json:"cooking_method"`
	CostComparison   string  `json:"cost_comparison"`
}

// Tip is a canned food waste reduction measure.
type Tip struct {
	Category           string  `json:"category"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	ReductionPercent   float64 `json:"reduction_percent"`
	Difficulty         string  `json:"difficulty"`
	ImplementationTime string  `json:"implementation_time"`
	CostImpact         string  `json:"cost_impact"`
}

// Canteen is a reference canteen with its measured menu and waste profile.
// Percentages are 0-100.
type Canteen struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Location         string  `json:"location"`
	Address          string  `json:"address,omitempty"`
	CO2PerKg         float64 `json:"co2_per_kg"`
	GreenPercent     float64 `json:"green_percent"`
	MeatPercent      float64 `json:"meat_percent"`
	OrganicPercent   float64 `json:"organic_percent"`
	FoodWastePercent float64 `json:"food_waste_percent"`
	LocalSourced     float64 `json:"local_sourced"`
	Employees        int     `json:"employees"`
	MealsPerDay      int     `json:"meals_per_day"`
	OperatingDays    int     `json:"operating_days"`
}

// Dataset is the raw reference data a Store is built from.
type Dataset struct {
	SchemaVersion string
	Factors       []EmissionFactor
	Categories    []CategoryInfo
	Comparisons   []Comparison
	Transport     []TransportFactor
	Seasonal      []SeasonalProduce
	Alternatives  []Alternative
	Tips          []Tip
	Canteens      []Canteen
}
