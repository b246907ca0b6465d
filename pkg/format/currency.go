package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	return signed(amount, "$", 2)
}

// WholeCurrency returns a currency string rounded to whole dollars (e.g., "$3,049,579").
func WholeCurrency(amount float64) string {
	return signed(amount, "$", 0)
}

// Decimal returns a number with thousands separators and a fixed number of decimals.
func Decimal(amount float64, places int) string {
	return signed(amount, "", places)
}

// Ticker renders a price movement the way the dashboard card shows it: an arrow
// for the direction and the absolute change with one decimal (e.g., "↘ 0.4%").
func Ticker(delta float64) string {
	arrow := "↗"
	if delta < 0 {
		arrow = "↘"
	}
	return fmt.Sprintf("%s %.1f%%", arrow, math.Abs(delta))
}

func signed(amount float64, symbol string, places int) string {
	switch {
	case math.IsNaN(amount):
		return symbol + "NaN"
	case math.IsInf(amount, 1):
		return symbol + "∞"
	case math.IsInf(amount, -1):
		return "-" + symbol + "∞"
	}

	formatted := formatPositive(math.Abs(amount), places)
	if amount < 0 && strings.Trim(formatted, "0.,") != "" {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}

func formatPositive(value float64, places int) string {
	if places < 0 {
		places = 0
	}
	// Round the decimal value the user sees, half away from zero, rather than
	// its binary approximation.
	formatted := decimal.NewFromFloat(value).StringFixed(int32(places))
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := ""
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	if decPart == "" {
		return intPart
	}
	return intPart + "." + decPart
}
