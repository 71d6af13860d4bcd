package impact

import (
	"math"

	"github.com/rshade/canteenco2/internal/factors"
)

// Assumptions used to expand a reference canteen into a full parameter set.
const (
	canteenProteinGram    = 120.0
	canteenVegetablesGram = 200.0
	canteenCarbsGram      = 150.0

	// Red and bright meat each take this share of the meat menu; fish gets
	// the remainder.
	canteenRedMeatShare    = 0.4
	canteenBrightMeatShare = 0.4

	// Waste split: preparation and buffet 40% each, plate 20%.
	canteenWastePreparationShare = 0.4
	canteenWasteBuffetShare      = 0.4
	canteenWastePlateShare       = 0.2

	// Organic shares per category relative to the canteen's total.
	canteenOrganicMeatShare       = 0.5
	canteenOrganicVegetablesShare = 1.2
	canteenOrganicDairyShare      = 1.1

	// canteenSeasonalShare relates seasonal produce to local sourcing.
	canteenSeasonalShare = 0.9

	// canteenMealKg is the assumed plated weight of one meal.
	canteenMealKg = 0.5
)

// CanteenProfile expands a reference canteen into calculation parameters.
//
// The canteen's meat share is split 40/40/20 into red meat, bright meat
// and fish and the rest of the menu is vegetarian, so the distribution
// sums to 100. The same canteen always yields the same parameters.
func CanteenProfile(c factors.Canteen) CanteenParameters {
	red := round1(c.MeatPercent * canteenRedMeatShare)
	bright := round1(c.MeatPercent * canteenBrightMeatShare)
	fish := round1(c.MeatPercent - red - bright)
	vegetarian := round1(math.Max(0, 100-red-bright-fish))

	days := c.OperatingDays
	if days <= 0 {
		days = DefaultOperatingDays
	}

	return CanteenParameters{
		Employees:      Ptr(c.Employees),
		MealsPerDay:    Ptr(DefaultMealsPerDay),
		OperatingDays:  Ptr(days),
		AttendanceRate: Ptr(DefaultAttendanceRate),
		MeatDistribution: &MeatDistribution{
			RedMeatPercent:    red,
			BrightMeatPercent: bright,
			FishPercent:       fish,
			VegetarianPercent: vegetarian,
		},
		OrganicPercent: &OrganicPercent{
			Meat:       math.Min(c.OrganicPercent*canteenOrganicMeatShare, 100),
			Vegetables: math.Min(c.OrganicPercent*canteenOrganicVegetablesShare, 100),
			Dairy:      math.Min(c.OrganicPercent*canteenOrganicDairyShare, 100),
		},
		Waste: &WastePercent{
			Preparation: round1(c.FoodWastePercent * canteenWastePreparationShare),
			Plate:       round1(c.FoodWastePercent * canteenWastePlateShare),
			Buffet:      round1(c.FoodWastePercent * canteenWasteBuffetShare),
		},
		PortionSizes: &PortionSizes{
			ProteinGram:    canteenProteinGram,
			VegetablesGram: canteenVegetablesGram,
			CarbsGram:      canteenCarbsGram,
		},
		LocalSourcing:   Ptr(c.LocalSourced),
		SeasonalProduce: Ptr(math.Min(c.LocalSourced*canteenSeasonalShare, 100)),
	}
}

// CanteenBaselineTons estimates a canteen's annual tons CO2e from its
// measured intensity, assuming half a kilo per meal and default attendance.
func CanteenBaselineTons(c factors.Canteen) float64 {
	days := c.OperatingDays
	if days <= 0 {
		days = DefaultOperatingDays
	}
	meals := float64(c.Employees) * float64(days) * DefaultAttendanceRate
	return c.CO2PerKg * canteenMealKg * meals / 1000
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
