// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/aromadata/aromadata/pkg/constants"
)

// RoundTo rounds a value to the given number of decimal places.
func RoundTo(val float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	scale := math.Pow(10, float64(places))
	return math.Round(val*scale) / scale
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// ApproxEqual compares two derived figures using a relative tolerance so that
// large revenue amounts and small per-hectare yields are treated alike.
func ApproxEqual(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= constants.FloatTolerance*scale
}

// Floor returns val bounded below by lo. Values above lo pass through unchanged.
func Floor(val, lo float64) float64 {
	return math.Max(lo, val)
}

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}
