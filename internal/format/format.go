// Package format is the canonical numeric-to-string layer for every display
// and export surface.
//
// A value formatted here must appear byte-identical in the CLI table, the
// TUI, the CSV export, the PDF export, and HTTP responses. No other package
// may convert a CPI, currency, carbon, percent, or score value to text.
//
// Missing values (nil pointers) and non-finite values (NaN, ±Inf from
// zero-baseline divisions) render as a placeholder, never as zero and never
// as a panic.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is the default rendering for missing or non-finite values.
const Placeholder = "—"

// CarbonTonThresholdKg is the mass at which carbon switches from kg to
// metric-ton display.
const CarbonTonThresholdKg = 1000.0

// printer is the locale-aware message printer for thousand separators.
// English locale keeps separators consistent across surfaces.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatCPI renders a Cost-Performance Index with exactly two decimal
// places. nil, NaN, and ±Inf render as the default placeholder.
//
// Example: FormatCPI(&v) with v=9.1 returns "9.10".
func FormatCPI(v *float64) string {
	return FormatCPIWith(v, Placeholder)
}

// FormatCPIWith is FormatCPI with a caller-chosen placeholder. The CSV
// serializer passes "" so spreadsheet cells stay empty instead of showing a
// dash; on any populated finite value the output is identical to FormatCPI.
func FormatCPIWith(v *float64, placeholder string) string {
	if !isFinite(v) {
		return placeholder
	}
	return fmt.Sprintf("%.2f", *v)
}

// FormatCurrency renders a dollar amount with thousand separators and two
// decimals, e.g. "$1,234.56". Negatives render as "-$1,234.56".
func FormatCurrency(v *float64) string {
	if !isFinite(v) {
		return Placeholder
	}
	amount := *v
	if amount < 0 {
		return "-$" + withSeparators(math.Abs(amount), 2)
	}
	return "$" + withSeparators(amount, 2)
}

// FormatCarbon renders an embodied-carbon mass in kg CO2e, switching to
// metric tons at CarbonTonThresholdKg. Two decimals either way.
//
// Examples: "28.00 kg CO2e", "1.25 t CO2e", "-12.00 kg CO2e".
func FormatCarbon(kg *float64) string {
	if !isFinite(kg) {
		return Placeholder
	}
	v := *kg
	if math.Abs(v) >= CarbonTonThresholdKg {
		return fmt.Sprintf("%.2f t CO2e", v/CarbonTonThresholdKg)
	}
	return fmt.Sprintf("%.2f kg CO2e", v)
}

// FormatSignedPercent renders a percentage with one decimal and an explicit
// leading "+" for positive values, e.g. "+12.3%", "-4.0%", "0.0%".
func FormatSignedPercent(v *float64) string {
	if !isFinite(v) {
		return Placeholder
	}
	if *v > 0 {
		return fmt.Sprintf("+%.1f%%", *v)
	}
	return fmt.Sprintf("%.1f%%", *v)
}

// FormatScore renders an LIS or RIS score with one decimal place.
func FormatScore(v *float64) string {
	if !isFinite(v) {
		return Placeholder
	}
	return fmt.Sprintf("%.1f", *v)
}

// isFinite reports whether v is present and a real number.
func isFinite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

// withSeparators formats a non-negative float with thousand separators in
// the integer part and the given decimal precision.
func withSeparators(v float64, precision int) string {
	formatted := fmt.Sprintf("%.*f", precision, v)

	intPart := formatted
	fracPart := ""
	for i, c := range formatted {
		if c == '.' {
			intPart = formatted[:i]
			fracPart = formatted[i:]
			break
		}
	}

	var n int64
	for _, c := range intPart {
		if c < '0' || c > '9' {
			return formatted
		}
		n = n*10 + int64(c-'0')
	}

	return printer.Sprintf("%d", n) + fracPart
}
