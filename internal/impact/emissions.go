package impact

// Reference average intensities in kg CO2e per kg food. They are coarser
// than the per-item factors in the reference dataset.
const (
	avgRedMeat    = 26.0
	avgBrightMeat = 6.0
	avgFish       = 4.5
	avgVegetarian = 1.2
	avgVegetables = 0.5
	avgCarbs      = 1.2
)

// Organic multipliers per unit organic fraction.
const (
	organicRedMeatReduction    = 0.17
	organicBrightMeatIncrease  = 0.15
	organicVegetablesReduction = 0.20
)

// Transport model: kg CO2 per kg food per km, times a typical distance.
const (
	internationalShare   = 0.20
	localFactorPerKm     = 0.001
	localDistanceKm      = 50.0
	regionalFactorPerKm  = 0.003
	regionalDistanceKm   = 300.0
	intlFactorPerKm      = 0.008
	intlDistanceKm       = 2000.0
	seasonalTransportCut = 0.30
)

// Waste model.
const (
	disposalShare        = 0.15
	achievableWasteShare = 0.60
)

// seasonalBenefitPerPercent is the kg CO2e saved per meal per percent of
// seasonal produce.
const seasonalBenefitPerPercent = 0.015

// foodEmissions holds per-meal food emissions by component, before transport
// and waste.
type foodEmissions struct {
	RedMeat    float64
	BrightMeat float64
	Fish       float64
	Vegetarian float64
	Vegetables float64
	Carbs      float64
}

func (f foodEmissions) total() float64 {
	return f.RedMeat + f.BrightMeat + f.Fish + f.Vegetarian + f.Vegetables + f.Carbs
}

func baseFoodEmissions(in Inputs) foodEmissions {
	proteinKg := in.PortionSizes.ProteinGram / 1000
	md := in.MeatDistribution
	return foodEmissions{
		RedMeat:    md.RedMeatPercent / 100 * proteinKg * avgRedMeat,
		BrightMeat: md.BrightMeatPercent / 100 * proteinKg * avgBrightMeat,
		Fish:       md.FishPercent / 100 * proteinKg * avgFish,
		Vegetarian: md.VegetarianPercent / 100 * proteinKg * avgVegetarian,
		Vegetables: in.PortionSizes.VegetablesGram / 1000 * avgVegetables,
		Carbs:      in.PortionSizes.CarbsGram / 1000 * avgCarbs,
	}
}

// applyOrganic returns the organic-adjusted emissions and the summary of
// the change. Organic red meat and vegetables lower emissions; organic
// bright meat raises them.
func applyOrganic(base foodEmissions, op OrganicPercent) (foodEmissions, OrganicImpact) {
	meat := op.Meat / 100
	veg := op.Vegetables / 100

	adj := base
	adj.RedMeat = base.RedMeat * (1 - organicRedMeatReduction*meat)
	adj.BrightMeat = base.BrightMeat * (1 + organicBrightMeatIncrease*meat)
	adj.Vegetables = base.Vegetables * (1 - organicVegetablesReduction*veg)

	return adj, OrganicImpact{
		RedMeatSaved:        base.RedMeat - adj.RedMeat,
		BrightMeatIncreased: adj.BrightMeat - base.BrightMeat,
		VegetablesSaved:     base.Vegetables - adj.Vegetables,
		NetEffect:           adj.total() - base.total(),
		Recommendation:      organicAdvice(base),
	}
}

func organicAdvice(base foodEmissions) string {
	if base.RedMeat > base.BrightMeat {
		return "Focus the organic budget on vegetables and beef. Avoid organic pork and chicken, " +
			"they have a higher climate impact."
	}
	return "Prioritise organic vegetables. For meat, organic status has a mixed climate impact, " +
		"so weigh other factors."
}

// transportEmissions returns per-meal transport kg CO2e.
func transportEmissions(in Inputs) float64 {
	foodKg := (in.PortionSizes.ProteinGram + in.PortionSizes.VegetablesGram + in.PortionSizes.CarbsGram) / 1000

	local := in.LocalSourcing / 100
	regional := 1 - local - internationalShare

	perKg := local*localFactorPerKm*localDistanceKm +
		regional*regionalFactorPerKm*regionalDistanceKm +
		internationalShare*intlFactorPerKm*intlDistanceKm

	return foodKg * perKg * (1 - seasonalTransportCut*in.SeasonalProduce/100)
}

// wasteImpact applies the waste shares to the organic-adjusted food total.
func wasteImpact(adjustedTotal float64, w WastePercent) WasteImpact {
	production := adjustedTotal * w.Total() / 100
	disposal := production * disposalShare
	total := production + disposal
	return WasteImpact{
		Preparation:        adjustedTotal * w.Preparation / 100,
		Plate:              adjustedTotal * w.Plate / 100,
		Buffet:             adjustedTotal * w.Buffet / 100,
		Production:         production,
		Disposal:           disposal,
		TotalAdded:         total,
		PotentialReduction: total * achievableWasteShare,
	}
}

func seasonalBenefit(seasonalPercent float64) float64 {
	return seasonalPercent * seasonalBenefitPerPercent
}
