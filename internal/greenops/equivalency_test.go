package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name        string
		input       CarbonInput
		wantTrees   float64
		wantFlights float64
		wantKm      float64
		wantIsEmpty bool
		wantErr     error
	}{
		{name: "one ton", input: CarbonInput{Value: 1, Unit: "t"}, wantTrees: 50, wantFlights: 4, wantKm: 1000 / 0.17},
		{
			name:        "kg with CO2e suffix",
			input:       CarbonInput{Value: 170, Unit: "kgCO2e"},
			wantTrees:   8.5,
			wantFlights: 0.68,
			wantKm:      1000,
		},
		{name: "grams", input: CarbonInput{Value: 5000, Unit: "g"}, wantTrees: 0.25, wantFlights: 0.02, wantKm: 5 / 0.17},
		{name: "empty unit is kg", input: CarbonInput{Value: 250}, wantTrees: 12.5, wantFlights: 1, wantKm: 250 / 0.17},
		{name: "below threshold", input: CarbonInput{Value: 0.5, Unit: "kg"}, wantIsEmpty: true},
		{name: "negative", input: CarbonInput{Value: -1, Unit: "kg"}, wantIsEmpty: true, wantErr: ErrNegativeValue},
		{name: "bad unit", input: CarbonInput{Value: 10, Unit: "lb"}, wantIsEmpty: true, wantErr: ErrInvalidUnit},
		{name: "NaN", input: CarbonInput{Value: math.NaN(), Unit: "kg"}, wantIsEmpty: true, wantErr: ErrCalculationOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Calculate(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, out.IsEmpty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIsEmpty, out.IsEmpty)
			if tt.wantIsEmpty {
				assert.Empty(t, out.Results)
				return
			}

			require.Len(t, out.Results, 4)
			assert.Equal(t, EquivalencyTreesPlanted, out.Results[0].Type)
			assert.InEpsilon(t, tt.wantTrees, out.Results[0].Value, 1e-9)
			assert.Equal(t, EquivalencyFlightsToLondon, out.Results[1].Type)
			assert.InEpsilon(t, tt.wantFlights, out.Results[1].Value, 1e-9)
			assert.Equal(t, EquivalencyKmDriven, out.Results[2].Type)
			assert.InEpsilon(t, tt.wantKm, out.Results[2].Value, 1e-9)
			assert.Equal(t, EquivalencyHomeDays, out.Results[3].Type)
			assert.Contains(t, out.DisplayText, "trees planted")
			assert.Contains(t, out.DisplayText, "flights to London")
		})
	}
}

func TestAnnualEquivalencies(t *testing.T) {
	out, err := AnnualEquivalencies(110.6)
	require.NoError(t, err)
	assert.InDelta(t, 110600, out.InputKg, 1e-6)

	// 50 trees and 4 flights per ton.
	assert.InDelta(t, 110.6*50, out.Results[0].Value, 1e-9)
	assert.InDelta(t, 110.6/0.25, out.Results[1].Value, 1e-9)
	assert.Equal(t, "5,530", out.Results[0].FormattedValue)
	assert.Equal(t, "442", out.Results[1].FormattedValue)
	assert.Equal(t, "650,588", out.Results[2].FormattedValue)
	assert.Equal(t, "85,077", out.Results[3].FormattedValue)
	assert.Equal(t, "Equivalent to ~5,530 trees planted or ~442 flights to London", out.DisplayText)
}

func TestEquivalencyType_String(t *testing.T) {
	assert.Equal(t, "KmDriven", EquivalencyKmDriven.String())
	assert.Equal(t, "TreesPlanted", EquivalencyTreesPlanted.String())
	assert.Equal(t, "FlightsToLondon", EquivalencyFlightsToLondon.String())
	assert.Equal(t, "HomeDays", EquivalencyHomeDays.String())
	assert.Equal(t, "EquivalencyType(9)", EquivalencyType(9).String())
}

func TestNormalizeToKg(t *testing.T) {
	tests := []struct {
		unit string
		want float64
	}{
		{"g", 0.15}, {"gCO2e", 0.15}, {"kg", 150}, {"KG", 150}, {"t", 150000}, {"tCO2e", 150000},
	}
	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			got, err := NormalizeToKg(150, tt.unit)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.True(t, IsRecognizedUnit(tt.unit))
		})
	}

	_, err := NormalizeToKg(math.Inf(1), "kg")
	require.ErrorIs(t, err, ErrCalculationOverflow)
	_, err = NormalizeToKg(math.MaxFloat64, "t")
	require.ErrorIs(t, err, ErrCalculationOverflow)
	assert.False(t, IsRecognizedUnit("lb"))
}
