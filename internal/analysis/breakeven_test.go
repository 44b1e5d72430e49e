package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBreakEvenClearWinner(t *testing.T) {
	// Cheaper and lower carbon than the 31/28 baseline.
	result := CalculateBreakEven(mat(31, 28), mat(27, 18), DefaultAssumptions())

	assert.Equal(t, VerdictClearWinner, result.Verdict)
	assert.Contains(t, result.Recommendation, "clear winner")
	assert.Nil(t, result.PaybackYears)
}

func TestCalculateBreakEvenWorthIt(t *testing.T) {
	// 2 tons of carbon saved is worth $100 at $50/ton, beating the $50
	// premium.
	result := CalculateBreakEven(mat(100, 2000), mat(150, 0), DefaultAssumptions())

	assert.Equal(t, VerdictWorthIt, result.Verdict)
	assert.Contains(t, result.Recommendation, "worth the premium")
	assert.InDelta(t, 50, result.TotalCostAdvantage, 1e-9)
}

func TestCalculateBreakEvenPaysBack(t *testing.T) {
	// $100 premium, $20/year operational savings: 5-year payback on a
	// 30-year lifespan. Carbon savings too small for rung 2 to fire.
	assumptions := DefaultAssumptions()
	assumptions.EnergySavingsPerYear = 12
	assumptions.MaintenanceSavingsPerYear = 8

	result := CalculateBreakEven(mat(100, 100), mat(200, 90), assumptions)

	assert.Equal(t, VerdictPaysBack, result.Verdict)
	require.NotNil(t, result.PaybackYears)
	assert.InDelta(t, 5, *result.PaybackYears, 1e-9)
	assert.Contains(t, result.Recommendation, "5.0 years")
}

func TestCalculateBreakEvenQualifiedPositive(t *testing.T) {
	// Pricier alternative with a >50% carbon reduction and no positive
	// total cost advantage.
	result := CalculateBreakEven(mat(31, 28), mat(45, 10), DefaultAssumptions())

	assert.Equal(t, VerdictQualifiedPositive, result.Verdict)
	assert.Contains(t, result.Recommendation, "major reduction")
	assert.Negative(t, result.TotalCostAdvantage)
}

func TestCalculateBreakEvenNotRecommended(t *testing.T) {
	result := CalculateBreakEven(mat(31, 28), mat(45, 27), DefaultAssumptions())

	assert.Equal(t, VerdictNotRecommended, result.Verdict)
	assert.Contains(t, result.Recommendation, "do not support")
}

// TestLadderEvaluationOrder verifies that upper rungs shadow lower ones:
// inputs satisfying several rung predicates must resolve to the first.
func TestLadderEvaluationOrder(t *testing.T) {
	// Cheaper with a 100% carbon cut: rung 4's predicate (>50% savings)
	// also holds, but rung 1 wins.
	result := CalculateBreakEven(mat(31, 28), mat(20, 0), DefaultAssumptions())
	assert.Equal(t, VerdictClearWinner, result.Verdict)

	// Positive advantage with >50% savings and a fast payback: rung 2 wins
	// over rungs 3 and 4.
	assumptions := DefaultAssumptions()
	assumptions.EnergySavingsPerYear = 100
	result = CalculateBreakEven(mat(100, 2000), mat(150, 0), assumptions)
	assert.Equal(t, VerdictWorthIt, result.Verdict)

	// Fast payback plus >50% savings: rung 3 wins over rung 4.
	assumptions = DefaultAssumptions()
	assumptions.EnergySavingsPerYear = 50
	result = CalculateBreakEven(mat(100, 100), mat(200, 10), assumptions)
	assert.Equal(t, VerdictPaysBack, result.Verdict)
}

func TestCarbonPriceBreakEven(t *testing.T) {
	// $15 premium over 14 kg saved needs (15/14)*1000 ≈ $1071/ton.
	result := CalculateBreakEven(mat(31, 28), mat(46, 14), DefaultAssumptions())
	assert.InDelta(t, 15.0/14.0*1000, result.CarbonPriceBreakEven, 1e-9)

	// No carbon benefit: +Inf sentinel, not an error.
	result = CalculateBreakEven(mat(31, 28), mat(46, 30), DefaultAssumptions())
	assert.True(t, math.IsInf(result.CarbonPriceBreakEven, 1))

	// Zero savings also yields the sentinel.
	result = CalculateBreakEven(mat(31, 28), mat(46, 28), DefaultAssumptions())
	assert.True(t, math.IsInf(result.CarbonPriceBreakEven, 1))
}

func TestPaybackYearsNilWithoutSavings(t *testing.T) {
	// No annual savings means no operational payback path exists.
	result := CalculateBreakEven(mat(31, 28), mat(45, 27), DefaultAssumptions())
	assert.Nil(t, result.PaybackYears)
}
