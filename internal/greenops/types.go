// Package greenops is the presentation boundary for climate figures.
//
// The calculation engines work in unrounded float64. This package rounds
// their results for display (kg to 2 decimals, tons to 1, currency to 0),
// formats numbers with thousands separators and turns kg CO2e into
// everyday equivalencies such as kilometres driven.
package greenops

import "fmt"

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyKmDriven converts CO2e to kilometres in an average Danish passenger car.
	EquivalencyKmDriven EquivalencyType = iota

	// EquivalencyTreesPlanted converts CO2e to trees absorbing it over one year.
	EquivalencyTreesPlanted

	// EquivalencyFlightsToLondon converts CO2e to Copenhagen-London return flights.
	EquivalencyFlightsToLondon

	// EquivalencyHomeDays converts CO2e to days of average Danish household electricity.
	EquivalencyHomeDays
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyKmDriven:
		return "KmDriven"
	case EquivalencyTreesPlanted:
		return "TreesPlanted"
	case EquivalencyFlightsToLondon:
		return "FlightsToLondon"
	case EquivalencyHomeDays:
		return "HomeDays"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// CarbonInput is an amount of CO2e in some unit.
type CarbonInput struct {
	Value float64 `json:"value"`

	// Unit is one of g, kg, t and their CO2e variants (gCO2e, kgCO2e, tCO2e).
	Unit string `json:"unit"`
}

// EquivalencyResult represents a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput contains all equivalency results for display.
type EquivalencyOutput struct {
	// InputKg is the normalized input value in kilograms CO2e.
	InputKg float64 `json:"input_kg"`

	Results []EquivalencyResult `json:"results"`

	// DisplayText is the prose form, e.g.
	// "Equivalent to ~5,530 trees planted or ~442 flights to London".
	DisplayText string `json:"display_text"`

	// IsEmpty is true when the input was too small to be worth comparing.
	IsEmpty bool `json:"is_empty"`
}
