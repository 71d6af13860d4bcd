package factors

// Seed data compiled from CONCITO (2021), IPCC AR6 and DTU Food Institute
// figures. Item names are the Danish commodity names used by procurement.

const (
	srcConcito  = "CONCITO 2021"
	yearConcito = 2021
)

func ef(item string, c Category, co2 float64, conf, notes string, organic bool) EmissionFactor {
	return EmissionFactor{
		FoodItem:   item,
		Category:   c,
		CO2ePerKg:  co2,
		IsOrganic:  organic,
		Source:     srcConcito,
		Year:       yearConcito,
		Confidence: conf,
		Notes:      notes,
	}
}

// SeedData returns the built-in reference dataset.
//
//nolint:funlen // data table
func SeedData() Dataset {
	return Dataset{
		SchemaVersion: SchemaVersion,
		Factors: []EmissionFactor{
			ef("Oksekød (dansk)", CategoryRedMeat, 27.0, "high", "Conventional Danish beef", false),
			ef("Oksekød (økologisk)", CategoryRedMeat, 22.5, "high", "Organic cuts ~17% through better soil management", true),
			ef("Kalvekød", CategoryRedMeat, 24.5, "high", "Slightly lower than adult cattle", false),
			ef("Lammekød", CategoryRedMeat, 24.0, "medium", "Sheep and lamb", false),

			ef("Svinekød (dansk)", CategoryBrightMeat, 7.6, "high", "Conventional Danish pork", false),
			ef("Svinekød (økologisk)", CategoryBrightMeat, 8.1, "high", "Longer production time raises emissions", true),
			ef("Kylling", CategoryBrightMeat, 4.3, "high", "Most climate-efficient meat", false),
			ef("Kylling (økologisk)", CategoryBrightMeat, 5.2, "high", "Organic chicken +20% from longer rearing", true),
			ef("Kalkun", CategoryBrightMeat, 4.8, "medium", "Between chicken and pork", false),
			ef("And", CategoryBrightMeat, 6.2, "medium", "Higher fat content", false),

			ef("Laks (opdræt)", CategoryFish, 5.1, "high", "Norwegian/Danish farmed salmon", false),
			ef("Laks (økologisk opdræt)", CategoryFish, 4.8, "medium", "Organic salmon with better feed", true),
			ef("Torsk (vild)", CategoryFish, 3.0, "medium", "Varies with catch method", false),
			ef("Rødfisk", CategoryFish, 3.2, "medium", "Bottom trawling raises emissions", false),
			ef("Rejer", CategoryFish, 8.5, "medium", "Trawling and refrigeration", false),
			ef("Muslinger", CategoryFish, 0.5, "medium", "Very low, partly carbon binding", false),

			ef("Mælk", CategoryDairy, 1.4, "high", "Per litre Danish milk", false),
			ef("Mælk (økologisk)", CategoryDairy, 1.5, "high", "Organic milk slightly higher", true),
			ef("Ost (hard)", CategoryDairy, 9.8, "high", "Average hard cheese", false),
			ef("Ost (blød)", CategoryDairy, 8.5, "medium", "Brie, camembert etc.", false),
			ef("Smør", CategoryDairy, 12.1, "high", "High fat, high emission", false),
			ef("Yoghurt", CategoryDairy, 2.2, "medium", "Plain yoghurt", false),

			ef("Æg (konventionel)", CategoryEggs, 3.2, "high", "Per kg eggs", false),
			ef("Æg (økologisk)", CategoryEggs, 3.8, "high", "Free range, longer production", true),

			ef("Bønner (tørrede)", CategoryLegumes, 0.8, "high", "Black beans, kidney beans etc.", false),
			ef("Linser", CategoryLegumes, 0.9, "high", "All lentil types", false),
			ef("Kikærter", CategoryLegumes, 1.0, "high", "Dried chickpeas", false),
			ef("Tofu", CategorySoyProducts, 2.0, "medium", "Soybean tofu", false),
			ef("Tempeh", CategorySoyProducts, 2.1, "medium", "Fermented soy", false),
			ef("Seitan", CategoryPlantProtein, 1.4, "medium", "Wheat gluten", false),

			ef("Rodfrugter (gulerødder, kartofler)", CategoryVegetables, 0.4, "high", "Seasonal, local", false),
			ef("Løg og hvidløg", CategoryVegetables, 0.3, "high", "Very low emission", false),
			ef("Kål (alle typer)", CategoryVegetables, 0.5, "high", "Danish kale, white cabbage etc.", false),
			ef("Tomater (væksthus)", CategoryVegetables, 2.3, "medium", "Heated greenhouse", false),
			ef("Tomater (friland)", CategoryVegetables, 0.7, "medium", "Seasonal outdoor", false),
			ef("Salat (væksthus)", CategoryVegetables, 1.8, "medium", "Heated cultivation", false),
			ef("Squash/courgette", CategoryVegetables, 0.6, "medium", "Relatively low emission", false),

			ef("Ris (hvid)", CategoryGrains, 2.7, "high", "Methane from flooded fields", false),
			ef("Pasta", CategoryGrains, 1.1, "medium", "Wheat based", false),
			ef("Brød (rugbrød)", CategoryGrains, 0.8, "medium", "Danish rye bread", false),
			ef("Havregryn", CategoryGrains, 1.4, "medium", "Good protein efficiency", false),
			ef("Quinoa", CategoryGrains, 2.8, "medium", "Imported from South America", false),
		},
		Categories: []CategoryInfo{
			{CategoryRedMeat, "Red meat (beef, veal, lamb)", "#c0392b", 25.0, "very_high"},
			{CategoryBrightMeat, "Bright meat (pork, chicken, turkey)", "#e67e22", 6.0, "medium"},
			{CategoryFish, "Fish and seafood", "#3498db", 4.5, "medium"},
			{CategoryDairy, "Dairy", "#f39c12", 6.5, "medium"},
			{CategoryEggs, "Eggs", "#f1c40f", 3.5, "low"},
			{CategoryLegumes, "Legumes", "#27ae60", 0.9, "very_low"},
			{CategorySoyProducts, "Soy products", "#2ecc71", 2.0, "very_low"},
			{CategoryPlantProtein, "Plant proteins", "#16a085", 1.5, "very_low"},
			{CategoryVegetables, "Vegetables", "#1abc9c", 0.8, "very_low"},
			{CategoryGrains, "Grains", "#95a5a6", 1.5, "very_low"},
		},
		Comparisons: []Comparison{
			{FoodItem: "Oksekød", ConventionalCO2: 27.0, OrganicCO2: 22.5, DifferencePercent: -16.7,
				Explanation:    "Grazing, soil management and less synthetic fertiliser lower organic beef emissions.",
				Recommendation: "Recommended: organic cuts the footprint substantially"},
			{FoodItem: "Svinekød", ConventionalCO2: 7.6, OrganicCO2: 8.1, DifferencePercent: 6.6,
				Explanation:    "Longer production time and lower feed efficiency raise organic pork emissions.",
				Recommendation: "Important: organic pork is worse for the climate"},
			{FoodItem: "Kylling", ConventionalCO2: 4.3, OrganicCO2: 5.2, DifferencePercent: 20.9,
				Explanation:    "Slow-growing breeds and longer rearing need more feed.",
				Recommendation: "Note: organic chicken adds ~21% CO2e"},
			{FoodItem: "Mælk", ConventionalCO2: 1.4, OrganicCO2: 1.5, DifferencePercent: 7.1,
				Explanation:    "Organic cows yield slightly less milk per animal.",
				Recommendation: "Minimal difference, choose on other criteria"},
			{FoodItem: "Æg", ConventionalCO2: 3.2, OrganicCO2: 3.8, DifferencePercent: 18.8,
				Explanation:    "Free-range hens have longer production time and lower laying rate.",
				Recommendation: "Organic eggs have a higher footprint"},
			{FoodItem: "Grøntsager", ConventionalCO2: 0.5, OrganicCO2: 0.4, DifferencePercent: -20.0,
				Explanation:    "No synthetic fertiliser and better soil quality.",
				Recommendation: "Recommended: organic vegetables are better for the climate"},
		},
		Transport: []TransportFactor{
			{"Lastbil (lokal)", "0-100 km", 0.062, "Local truck distribution"},
			{"Lastbil (regional)", "100-500 km", 0.045, "Regional truck transport"},
			{"Lastbil (lang)", "500+ km", 0.035, "Long-haul truck transport"},
			{"Skib (container)", "International", 0.008, "Container ship"},
			{"Fly (cargo)", "International", 1.130, "Air freight"},
			{"Tog", "National/EU", 0.022, "Rail"},
		},
		Seasonal: []SeasonalProduce{
			{"Gulerødder", months(2, 3, 4, 5, 6, 7, 8, 9, 10, 11), true, 15},
			{"Kartofler", months(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11), true, 10},
			{"Kål", months(0, 1, 2, 7, 8, 9, 10, 11), true, 20},
			{"Tomater (friland)", months(5, 6, 7, 8), false, 70},
			{"Salat", months(3, 4, 5, 6, 7, 8), false, 60},
			{"Squash", months(5, 6, 7, 8), false, 50},
			{"Jordbær", months(4, 5, 6), false, 80},
		},
		Alternatives: []Alternative{
			{"Oksekød", "Sorte bønner", "legumes", 97.0, 21, "medium", "Stews, patties, chili", "70% cheaper"},
			{"Oksekød", "Linser (brune)", "legumes", 96.7, 25, "medium", "Bolognese, casseroles", "75% cheaper"},
			{"Oksekød", "Svampe (portobello)", "vegetables", 98.5, 3, "high", "Fried, grilled", "20% more expensive"},
			{"Svinekød", "Kikærter", "legumes", 87.0, 19, "medium", "Curries, wraps", "65% cheaper"},
			{"Svinekød", "Tofu", "soy_products", 74.0, 17, "low", "Fried, marinated", "Same price"},
			{"Kylling", "Tofu", "soy_products", 53.0, 17, "medium", "Stir-fry, curries", "Same price"},
			{"Kylling", "Tempeh", "soy_products", 51.0, 19, "low", "Fried, marinated", "20% more expensive"},
			{"Kylling", "Seitan", "plant_protein", 67.0, 25, "high", "Fried, grilled", "10% cheaper"},
			{"Hakket kød", "Vegetarisk hakkekød", "plant_protein", 85.0, 18, "very_high", "As minced meat", "Same price"},
		},
		Tips: []Tip{
			{"Portionskontrol", "Flexible portion sizes (S/M/L)",
				"Offer small, medium and large portions. Cuts plate waste by 15-25%.",
				20, "easy", "1 week", "Neutral"},
			{"Bestilling", "Digital pre-ordering",
				"Let staff order lunch the day before for precise production planning.",
				25, "medium", "2-4 weeks", "System investment"},
			{"Buffet", "Smaller dishes, frequent refills",
				"Serve from smaller dishes refilled more often to keep food fresh and limit surplus.",
				15, "easy", "Immediately", "Neutral"},
			{"Måling", "Daily waste measurement",
				"Weigh and record discarded food every day.",
				10, "easy", "1 day", "Minimal (scale)"},
			{"Genbrug", "Use trimmings for stock and staff meals",
				"Bones for stock, vegetable scraps for soup, bread for croutons.",
				12, "medium", "1 week", "Saving"},
			{"Lagerstyring", "FIFO and data-driven purchasing",
				"First-in-first-out stock rotation and purchasing from historical consumption.",
				18, "medium", "2 weeks", "Saving"},
			{"Kompostering", "Biogas or composting",
				"Route unavoidable waste to biogas or compost instead of incineration.",
				8, "medium", "4-8 weeks", "Small cost"},
			{"Kommunikation", "Guest information on food waste",
				"Visible waste targets and encouragement to take less first.",
				10, "easy", "1 week", "Minimal"},
		},
		Canteens: seedCanteens(),
	}
}

func months(idx ...int) [12]bool {
	var m [12]bool
	for _, i := range idx {
		m[i] = true
	}
	return m
}
