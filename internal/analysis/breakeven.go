package analysis

import (
	"fmt"
	"math"

	"github.com/matfocus/matfocus/internal/material"
)

// CalculateBreakEven evaluates whether the alternative's cost premium is
// justified, using the recommendation ladder. Rungs are evaluated in order
// and the first match wins:
//
//  1. CostPremium <= 0: the alternative is no more expensive, clear winner.
//  2. TotalCostAdvantage > 0: the carbon value at the assumed price exceeds
//     the premium.
//  3. Operational payback exists and lands inside half the lifespan.
//  4. CarbonSavingsPercent > 50: a major carbon cut despite the premium.
//  5. Otherwise: not recommended on these numbers.
func CalculateBreakEven(
	baseline, alternative material.Material,
	assumptions Assumptions,
) BreakEvenAnalysis {
	metrics := CalculateCostCarbonMetrics(baseline, alternative)

	annualSavings := assumptions.EnergySavingsPerYear + assumptions.MaintenanceSavingsPerYear
	var paybackYears *float64
	if annualSavings > 0 {
		years := metrics.CostPremium / annualSavings
		paybackYears = &years
	}

	// $/ton price at which the carbon value exactly offsets the premium.
	// No carbon benefit means no price can justify a premium, hence +Inf.
	carbonPriceBreakEven := math.Inf(1)
	if metrics.CarbonSavings > 0 {
		carbonPriceBreakEven = metrics.CostPremium / metrics.CarbonSavings * KgPerTon
	}

	carbonValue := metrics.CarbonSavings * (assumptions.CarbonPricePerTon / KgPerTon)
	totalCostAdvantage := carbonValue - metrics.CostPremium

	verdict, recommendation := recommend(metrics, assumptions, paybackYears, carbonValue, totalCostAdvantage, alternative.Name)

	return BreakEvenAnalysis{
		PaybackYears:         paybackYears,
		CarbonPriceBreakEven: carbonPriceBreakEven,
		TotalCostAdvantage:   totalCostAdvantage,
		Verdict:              verdict,
		Recommendation:       recommendation,
	}
}

// recommend walks the ladder top to bottom. The branches are mutually
// exclusive by construction: each rung is only reachable when every rung
// above it failed.
func recommend(
	metrics CostCarbonMetrics,
	assumptions Assumptions,
	paybackYears *float64,
	carbonValue, totalCostAdvantage float64,
	alternativeName string,
) (Verdict, string) {
	if metrics.CostPremium <= 0 {
		return VerdictClearWinner, fmt.Sprintf(
			"%s is a clear winner: it costs no more than the baseline while cutting carbon.",
			alternativeName)
	}

	if totalCostAdvantage > 0 {
		return VerdictWorthIt, fmt.Sprintf(
			"%s is worth the premium: the avoided carbon is worth $%.2f at the assumed carbon price, more than the extra cost.",
			alternativeName, carbonValue)
	}

	if paybackYears != nil && *paybackYears < assumptions.LifespanYears/2 {
		return VerdictPaysBack, fmt.Sprintf(
			"%s pays back its premium in %.1f years through operational savings, well within its service life.",
			alternativeName, *paybackYears)
	}

	if metrics.CarbonSavingsPercent > 50 {
		return VerdictQualifiedPositive, fmt.Sprintf(
			"%s cuts carbon by %.1f%%, a major reduction, but the cost premium is not recovered; justify it on impact grounds.",
			alternativeName, metrics.CarbonSavingsPercent)
	}

	return VerdictNotRecommended, fmt.Sprintf(
		"%s costs %.1f%% more for a %.1f%% carbon change; the numbers do not support the switch.",
		alternativeName, metrics.CostPremiumPercent, metrics.CarbonSavingsPercent)
}
