package greenops

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups thousands with the English separator.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Round rounds f half away from zero to the given number of decimals.
func Round(f float64, decimals int) float64 {
	const base = 10
	m := math.Pow(base, float64(decimals))
	r := math.Round(f*m) / m
	if r == 0 {
		return 0 // no negative zero
	}
	return r
}

// RoundKg rounds a kg value for display.
func RoundKg(kg float64) float64 { return Round(kg, KgDecimals) }

// RoundTons rounds a tons value for display.
func RoundTons(t float64) float64 { return Round(t, TonsDecimals) }

// RoundCurrency rounds a currency amount for display.
func RoundCurrency(c float64) float64 { return Round(c, CurrencyDecimals) }

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats f rounded to precision decimals with thousand separators.
// Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	rounded := Round(f, precision)
	if precision <= 0 {
		return FormatNumber(int64(rounded))
	}

	s := strconv.FormatFloat(math.Abs(rounded), 'f', precision, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return fmt.Sprintf("%.*f", precision, rounded)
	}

	sign := ""
	if rounded < 0 {
		sign = "-"
	}
	return sign + FormatNumber(n) + "." + frac
}

// FormatLarge formats large numbers with abbreviated notation.
//
// Below LargeNumberThreshold it uses comma-separated integers, from there
// "~X.X million", and from BillionThreshold "~X.X billion".
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}
	return FormatNumber(int64(math.Round(n)))
}

// FormatKg renders a per-meal style kg value, e.g. "3.61 kg CO2e".
func FormatKg(kg float64) string {
	return FormatFloat(kg, KgDecimals) + " kg CO2e"
}

// FormatTons renders an annual tons value, e.g. "110.6 t CO2e".
func FormatTons(t float64) string {
	return FormatFloat(t, TonsDecimals) + " t CO2e"
}

// FormatCurrency renders a currency amount, e.g. "79,711 DKK".
func FormatCurrency(c float64) string {
	return FormatFloat(c, CurrencyDecimals) + " " + CurrencyCode
}
