package sourcing

import "math"

// Score weights.
const (
	weightPrice   = 0.35
	weightQuality = 0.45
	weightCO2     = 0.20
	localBonus    = 0.1

	// co2Ceiling is the kg CO2e at which the climate component reaches zero.
	co2Ceiling = 5.0
)

// TransportMultiplier scales an item's base CO2 by the import origin.
func TransportMultiplier(origin string) float64 {
	switch origin {
	case OriginDK, OriginNA:
		return 1.0
	case OriginEU:
		return 1.2
	default:
		return 1.5
	}
}

// Score rates one option between 0 and 1. Price or quality of 0 marks the
// option unavailable and scores 0.
func Score(price, quality int, co2 float64, local bool) float64 {
	if price == 0 || quality == 0 {
		return 0
	}

	normPrice := float64(3-price) / 2
	normQuality := float64(quality-1) / 2
	normCO2 := math.Max(0, (co2Ceiling-co2)/co2Ceiling)

	s := weightPrice*normPrice + weightQuality*normQuality + weightCO2*normCO2
	if local {
		s += localBonus
	}
	return math.Min(s, 1.0)
}

// percent converts a 0-1 score to a whole percentage.
func percent(score float64) int {
	return int(math.Round(score * 100))
}
