// Package sourcing scores domestic against imported procurement options per
// commodity and month.
//
// Price and quality are ordinal 1-3 scores with opposite directions: price
// 1 is the cheapest tier, quality 3 is the best. A zero for either means the
// option is unavailable.
package sourcing

// Origins and statuses with special meaning.
const (
	OriginDK    = "DK"
	OriginEU    = "EU"
	OriginWorld = "World"
	OriginNA    = "N/A"

	// StatusOutOfSeason disqualifies the domestic option.
	StatusOutOfSeason = "Ude"
	// StatusImport is reported when the import option is chosen.
	StatusImport = "Import"
)

// MonthOption is the domestic and import offer for one item in one month.
type MonthOption struct {
	DKPrice       int    `json:"dk_price"`
	DKQuality     int    `json:"dk_quality"`
	DKStatus      string `json:"dk_status"`
	ImportPrice   int    `json:"import_price"`
	ImportQuality int    `json:"import_quality"`
	ImportOrigin  string `json:"import_origin"`
}

// Item is a commodity with its monthly offers. Months is keyed 0 (January)
// to 11 (December); months without an entry have no data.
type Item struct {
	ID       string              `json:"-"`
	Name     string              `json:"name"`
	Category string              `json:"category"`
	CO2Base  float64             `json:"co2_base"`
	Months   map[int]MonthOption `json:"months"`
}

// Recommendation is the chosen option for one item in one month.
type Recommendation struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Origin   string  `json:"origin"`
	Status   string  `json:"status"`
	Price    int     `json:"price"`
	CO2      float64 `json:"co2"`
	Quality  int     `json:"quality"`
	// Score is the option's weighted score as a whole percentage, 0-100.
	Score    int  `json:"score"`
	IsImport bool `json:"is_import"`
}

// Dataset is the on-disk sourcing document.
type Dataset struct {
	SchemaVersion string          `json:"schema_version"`
	Items         map[string]Item `json:"items"`
}
