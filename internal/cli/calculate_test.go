package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/canteenco2/internal/factors"
	"github.com/rshade/canteenco2/internal/impact"
	"github.com/rshade/canteenco2/internal/sourcing"
)

const canteenYAML = `employees: 150
attendance_rate: 0.85
meals_per_day: 1
operating_days: 240
meat_distribution:
  red_meat_percent: 35
  bright_meat_percent: 35
  fish_percent: 15
  vegetarian_percent: 15
organic_percent:
  meat: 40
  vegetables: 60
  dairy: 30
waste:
  preparation: 8
  plate: 15
  buffet: 7
portion_sizes:
  protein_gram: 120
  vegetables_gram: 200
  carbs_gram: 150
local_sourcing: 60
seasonal_produce: 45
`

type calculateOutput struct {
	PerMealKg        float64                 `json:"per_meal_kg"`
	AnnualTons       float64                 `json:"annual_tons"`
	TotalMealsAnnual float64                 `json:"total_meals_annual"`
	CostSavings      float64                 `json:"cost_savings"`
	Recommendations  []impact.Recommendation `json:"recommendations"`
	Equivalencies    struct {
		Results []json.RawMessage `json:"results"`
	} `json:"equivalencies"`
	Canteen *struct {
		ID                 int     `json:"id"`
		Name               string  `json:"name"`
		BaselineAnnualTons float64 `json:"baseline_annual_tons"`
	} `json:"canteen"`
	Sourcing *struct {
		Month           int                       `json:"month"`
		Recommendations []sourcing.Recommendation `json:"recommendations"`
	} `json:"sourcing"`
}

func writeParams(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "canteen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCalculate_JSON(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, nil, "calculate", writeParams(t, canteenYAML), "-o", "json")
	require.NoError(t, err)

	var got calculateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.InDelta(t, 3.61, got.PerMealKg, 1e-9)
	assert.InDelta(t, 110.6, got.AnnualTons, 1e-9)
	assert.InDelta(t, 30600, got.TotalMealsAnnual, 1e-9)
	assert.InDelta(t, 79711, got.CostSavings, 1e-9)
	assert.Len(t, got.Equivalencies.Results, 4)
	assert.Nil(t, got.Canteen)
	assert.Nil(t, got.Sourcing)

	require.Len(t, got.Recommendations, 4)
	var categories []impact.RecommendationCategory
	for i, r := range got.Recommendations {
		assert.Equal(t, i+1, r.Priority)
		categories = append(categories, r.Category)
	}
	assert.Equal(t, []impact.RecommendationCategory{
		impact.CategoryMeatDistribution,
		impact.CategoryWasteReduction,
		impact.CategorySeasonality,
		impact.CategoryVegetarian,
	}, categories)
}

func TestCalculate_Table(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, nil, "calculate", writeParams(t, canteenYAML))
	require.NoError(t, err)

	for _, want := range []string{
		"Canteen footprint",
		"3.61 kg CO2e",
		"110.6 t CO2e",
		"30,600 meals",
		"Breakdown per meal",
		"red_meat",
		"Recommendations",
		"79,711 DKK",
	} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "flights to London")
	assert.NotContains(t, out, "Sourcing,")
}

func TestCalculate_WithMonth(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, nil, "calculate", writeParams(t, canteenYAML), "--month", "3", "-o", "json")
	require.NoError(t, err)

	var got calculateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotNil(t, got.Sourcing)
	assert.Equal(t, 2, got.Sourcing.Month)
	assert.NotEmpty(t, got.Sourcing.Recommendations)
}

func TestCalculate_Stdin(t *testing.T) {
	setupCLITest(t)

	params := `{"employees": 50, "meat_distribution": {"red_meat_percent": 10, "bright_meat_percent": 30,
		"fish_percent": 20, "vegetarian_percent": 40},
		"portion_sizes": {"protein_gram": 100, "vegetables_gram": 200, "carbs_gram": 150}}`

	out, err := execute(t, strings.NewReader(params), "calculate", "-", "-o", "json")
	require.NoError(t, err)

	var got calculateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Positive(t, got.PerMealKg)
	assert.Positive(t, got.AnnualTons)
}

func TestCalculate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		params  string
		args    []string
		wantIs  error
		wantMsg string
	}{
		{
			name:   "missing employees",
			params: "meat_distribution: {red_meat_percent: 100}\nportion_sizes: {protein_gram: 100}\n",
			wantIs: impact.ErrValidation,
		},
		{
			name:    "malformed document",
			params:  "employees: [1, 2\n",
			wantMsg: "parsing parameters",
		},
		{
			name:    "month out of range",
			params:  canteenYAML,
			args:    []string{"--month", "13"},
			wantMsg: "--month must be between 1 and 12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			args := append([]string{"calculate", writeParams(t, tt.params)}, tt.args...)
			_, err := execute(t, nil, args...)
			require.Error(t, err)
			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestCalculate_MissingFile(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, nil, "calculate", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading parameters")
}

func TestCalculate_Canteen(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, nil, "calculate", "--canteen", "215", "-o", "json")
	require.NoError(t, err)

	var got calculateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotNil(t, got.Canteen)
	assert.Equal(t, 215, got.Canteen.ID)
	assert.Equal(t, "Bravida", got.Canteen.Name)
	assert.InDelta(t, 52.7, got.Canteen.BaselineAnnualTons, 1e-9)
	assert.InDelta(t, 30600, got.TotalMealsAnnual, 1e-9)
	assert.Positive(t, got.PerMealKg)
	assert.NotEmpty(t, got.Recommendations)
}

func TestCalculate_CanteenTable(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, nil, "calculate", "--canteen", "215")
	require.NoError(t, err)
	assert.Contains(t, out, "Bravida, København (#215)")
	assert.Contains(t, out, "52.7 t CO2e reported")
	assert.Contains(t, out, "30,600 meals")
}

func TestCalculate_CanteenErrors(t *testing.T) {
	t.Run("unknown canteen", func(t *testing.T) {
		setupCLITest(t)

		_, err := execute(t, nil, "calculate", "--canteen", "1")
		require.ErrorIs(t, err, factors.ErrNotFound)
	})

	t.Run("canteen and file", func(t *testing.T) {
		setupCLITest(t)

		_, err := execute(t, nil, "calculate", writeParams(t, canteenYAML), "--canteen", "215")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})

	t.Run("neither", func(t *testing.T) {
		setupCLITest(t)

		_, err := execute(t, nil, "calculate")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "a parameters file or --canteen is required")
	})
}
