// Package equiv converts abstract carbon quantities (kg CO2e) into
// relatable real-world equivalencies like "miles driven" or "tree
// seedlings grown", using EPA-published conversion factors.
//
// Negative quantities are meaningful here: bio-based materials sequester
// carbon, and a negative carbon saving phrases as an offset rather than an
// emission.
package equiv

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// EPA formula constants (2024 edition).
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
// Each factor is kg CO2e per unit of activity; the equivalency divides the
// carbon value by the factor.
const (
	// MilesDrivenFactor is kg CO2e per mile for an average passenger
	// vehicle.
	MilesDrivenFactor = 0.192

	// TreeSeedlingFactor is kg CO2e absorbed per tree seedling grown for
	// ten years.
	TreeSeedlingFactor = 60.0

	// HomeDayFactor is kg CO2e per day of average US home electricity.
	HomeDayFactor = 18.3
)

// MinThresholdKg is the smallest carbon magnitude worth an equivalency
// line. Below it the numbers are meaninglessly small.
const MinThresholdKg = 1.0

// Equivalency is a single converted quantity.
type Equivalency struct {
	// Label is the descriptive phrase (e.g. "miles driven").
	Label string `json:"label"`
	// Value is the raw converted value.
	Value float64 `json:"value"`
	// Formatted is the display-ready string with thousand separators.
	Formatted string `json:"formatted"`
}

//nolint:gochecknoglobals // Shared printer for thousand separators.
var printer = message.NewPrinter(language.English)

// ForCarbonKg computes the standard equivalency set for a carbon quantity.
// The conversion works on the magnitude; callers phrase the sign. Returns
// nil when the magnitude is below MinThresholdKg or not finite.
func ForCarbonKg(kg float64) []Equivalency {
	magnitude := math.Abs(kg)
	if magnitude < MinThresholdKg || math.IsInf(magnitude, 0) || math.IsNaN(magnitude) {
		return nil
	}

	return []Equivalency{
		build("miles driven", magnitude/MilesDrivenFactor),
		build("tree seedlings grown for 10 years", magnitude/TreeSeedlingFactor),
		build("days of home electricity", magnitude/HomeDayFactor),
	}
}

func build(label string, value float64) Equivalency {
	return Equivalency{
		Label:     label,
		Value:     value,
		Formatted: formatValue(value),
	}
}

// formatValue rounds to a whole number with separators, keeping one
// decimal for small values where rounding would lose most of the signal.
func formatValue(v float64) string {
	if v < 10 {
		return printer.Sprintf("%.1f", v)
	}
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// Sentence renders the prose equivalency line for a carbon quantity.
// Positive values read as emissions avoided, negative ones as additional
// emissions. The empty string means no equivalency applies.
func Sentence(kg float64) string {
	eqs := ForCarbonKg(kg)
	if len(eqs) == 0 {
		return ""
	}

	verb := "Avoids"
	if kg < 0 {
		verb = "Adds"
	}
	return fmt.Sprintf("%s the equivalent of driving ~%s miles or growing ~%s tree seedlings for a decade",
		verb, eqs[0].Formatted, eqs[1].Formatted)
}

// Compact renders the abbreviated equivalency for constrained outputs,
// e.g. "(~781 mi, ~3 trees)". The empty string means no equivalency
// applies.
func Compact(kg float64) string {
	eqs := ForCarbonKg(kg)
	if len(eqs) == 0 {
		return ""
	}
	return fmt.Sprintf("(~%s mi, ~%s trees)", eqs[0].Formatted, eqs[1].Formatted)
}
