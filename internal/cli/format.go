// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatWeight formats pounds with one decimal.
// e.g., 197 -> "197.0 lbs"
func FormatWeight(lbs float64) string {
	return fmt.Sprintf("%.1f lbs", lbs)
}

// FormatChange labels a total-lost value by its sign.
// Positive is weight lost, negative weight gained.
func FormatChange(lost float64) (label, value string) {
	switch {
	case lost > 0:
		return "Total lost", FormatWeight(lost)
	case lost < 0:
		return "Total gained", FormatWeight(math.Abs(lost))
	default:
		return "Change", "No change from starting weight."
	}
}

// FormatBMI formats a BMI value with its category, or "not set" when zero.
func FormatBMI(bmi float64, category string) string {
	if bmi <= 0 {
		return "height not set"
	}
	return fmt.Sprintf("%.1f (%s)", bmi, category)
}

// FormatHeight formats inches as feet and inches.
// e.g., 70 -> "70.0 in (5' 10\")"
func FormatHeight(inches float64) string {
	if inches <= 0 {
		return "not set"
	}
	feet := int(inches) / 12
	rest := inches - float64(feet*12)
	return fmt.Sprintf("%.1f in (%d' %.0f\")", inches, feet, rest)
}

// FormatCoins formats a coin count with the right plural.
func FormatCoins(n int) string {
	if n == 1 {
		return "1 Blipcoin"
	}
	return FormatNumber(int64(n)) + " Blipcoins"
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}
