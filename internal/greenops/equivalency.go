package greenops

import (
	"fmt"
	"math"
)

// Calculate converts input to kilograms and expresses it as trees planted,
// flights to London, kilometres driven and days of household electricity.
//
// Inputs below MinEquivalencyThresholdKg give an empty output and no error.
// Invalid units and negative values return the normalization error.
func Calculate(input CarbonInput) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}
	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	trees := kg / TreePlantedFactor
	flights := kg / FlightToLondonFactor
	km := kg / KmDrivenFactor
	homeDays := kg / HomeDayFactor
	for _, v := range []float64{trees, flights, km, homeDays} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
		}
	}

	results := []EquivalencyResult{
		{
			Type:           EquivalencyTreesPlanted,
			Value:          trees,
			FormattedValue: formatEquivalencyValue(trees),
			Label:          "trees planted (one year of absorption)",
		},
		{
			Type:           EquivalencyFlightsToLondon,
			Value:          flights,
			FormattedValue: formatEquivalencyValue(flights),
			Label:          "return flights Copenhagen-London",
		},
		{Type: EquivalencyKmDriven, Value: km, FormattedValue: formatEquivalencyValue(km), Label: "km driven"},
		{
			Type:           EquivalencyHomeDays,
			Value:          homeDays,
			FormattedValue: formatEquivalencyValue(homeDays),
			Label:          "days of household electricity",
		},
	}

	return EquivalencyOutput{
		InputKg: kg,
		Results: results,
		DisplayText: fmt.Sprintf("Equivalent to ~%s trees planted or ~%s flights to London",
			results[0].FormattedValue, results[1].FormattedValue),
	}, nil
}

// AnnualEquivalencies expresses an annual tons figure as equivalencies.
func AnnualEquivalencies(tons float64) (EquivalencyOutput, error) {
	return Calculate(CarbonInput{Value: tons, Unit: "t"})
}

// formatEquivalencyValue rounds to a whole number, abbreviating large ones.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
