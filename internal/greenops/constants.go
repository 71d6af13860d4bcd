package greenops

// Equivalency factors in kg CO2e per unit of activity:
//
//	equivalency = kg_CO2e / factor
const (
	// KmDrivenFactor is kg CO2e per km for an average Danish petrol/diesel passenger car.
	KmDrivenFactor = 0.17

	// TreePlantedFactor is kg CO2e a planted tree absorbs in a year.
	TreePlantedFactor = 20.0

	// FlightToLondonFactor is kg CO2e per passenger for a Copenhagen-London
	// return flight.
	FlightToLondonFactor = 250.0

	// HomeDayFactor is kg CO2e per day of average Danish household electricity
	// (about 4,000 kWh a year at 0.12 kg CO2e/kWh).
	HomeDayFactor = 1.3
)

// Unit conversion factors to kilograms.
const (
	GramsToKg = 0.001
	KgToKg    = 1.0
	TonsToKg  = 1000.0
)

// Rounding precision at the display boundary.
const (
	KgDecimals       = 2
	TonsDecimals     = 1
	CurrencyDecimals = 0
)

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the smallest amount equivalencies are shown for.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold switches FormatLarge to "~X.X million".
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches FormatLarge to "~X.X billion".
	BillionThreshold = 1_000_000_000
)

// CurrencyCode is the unit cost savings are expressed in.
const CurrencyCode = "DKK"
