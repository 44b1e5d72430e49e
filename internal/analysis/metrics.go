package analysis

import (
	"github.com/matfocus/matfocus/internal/material"
)

// CalculateCostCarbonMetrics derives the cost and carbon deltas of choosing
// alternative over baseline.
//
// Percent fields divide by the baseline cost and baseline carbon, so a zero
// baseline yields ±Inf (or NaN for 0/0). Callers render those through the
// format package, which shows a placeholder instead of crashing or printing
// "Inf". CostPerKgCO2Saved is defined as 0 when CarbonSavings is 0: with no
// carbon delta there is no meaningful price per kilogram.
func CalculateCostCarbonMetrics(baseline, alternative material.Material) CostCarbonMetrics {
	baselineCost := baseline.CostOrZero()
	baselineCarbon := baseline.CarbonOrZero()

	costPremium := alternative.CostOrZero() - baselineCost
	carbonSavings := baselineCarbon - alternative.CarbonOrZero()

	costPerKg := 0.0
	if carbonSavings != 0 {
		costPerKg = costPremium / carbonSavings
	}

	return CostCarbonMetrics{
		CostPremium:           costPremium,
		CostPremiumPercent:    costPremium / baselineCost * 100,
		CarbonSavings:         carbonSavings,
		CarbonSavingsPercent:  carbonSavings / baselineCarbon * 100,
		CostPerKgCO2Saved:     costPerKg,
		CarbonPriceEquivalent: carbonSavings * (DefaultCarbonPricePerTon / KgPerTon),
	}
}
