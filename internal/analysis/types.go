// Package analysis computes cost-carbon economics for a pair of materials:
// premium and savings metrics, break-even payback, and a recommendation
// chosen by a fixed decision ladder.
//
// Every function is pure. Zero baselines produce ±Inf/NaN values that the
// format package renders as placeholders; nothing here panics on degenerate
// input.
package analysis

// DefaultCarbonPricePerTon is the reference carbon price in $/ton used for
// the carbon-price-equivalent metric and as the default break-even
// assumption. A simplification: real carbon markets trade in a wide band.
const DefaultCarbonPricePerTon = 50.0

// KgPerTon converts metric tons to kilograms.
const KgPerTon = 1000.0

// CostCarbonMetrics is the derived comparison between a baseline and an
// alternative material. Derived fresh on every comparison, never persisted.
type CostCarbonMetrics struct {
	// CostPremium is alternative cost minus baseline cost. Negative means
	// the alternative is cheaper.
	CostPremium float64 `json:"costPremium"`
	// CostPremiumPercent is the premium relative to the baseline cost.
	// ±Inf/NaN when the baseline cost is zero.
	CostPremiumPercent float64 `json:"costPremiumPercent"`
	// CarbonSavings is baseline carbon minus alternative carbon, in kg
	// CO2e. Positive means the alternative emits less.
	CarbonSavings float64 `json:"carbonSavings"`
	// CarbonSavingsPercent is the savings relative to baseline carbon.
	// ±Inf/NaN when the baseline carbon is zero.
	CarbonSavingsPercent float64 `json:"carbonSavingsPercent"`
	// CostPerKgCO2Saved is the premium paid per kg CO2e avoided. Defined
	// as 0 when CarbonSavings is 0.
	CostPerKgCO2Saved float64 `json:"costPerKgCO2Saved"`
	// CarbonPriceEquivalent values the carbon savings at the reference
	// carbon price, in dollars.
	CarbonPriceEquivalent float64 `json:"carbonPriceEquivalent"`
}

// Assumptions configures the break-even calculation. The zero value is not
// useful; obtain defaults from DefaultAssumptions.
type Assumptions struct {
	// EnergySavingsPerYear is annual operational energy savings in dollars.
	EnergySavingsPerYear float64 `json:"energySavingsPerYear"`
	// MaintenanceSavingsPerYear is annual maintenance savings in dollars.
	MaintenanceSavingsPerYear float64 `json:"maintenanceSavingsPerYear"`
	// LifespanYears is the assumed service life of the assembly.
	LifespanYears float64 `json:"lifespanYears"`
	// CarbonPricePerTon is the carbon price in $/ton used to value savings.
	CarbonPricePerTon float64 `json:"carbonPricePerTon"`
}

// DefaultAssumptions returns the standard break-even assumptions: no
// operational savings, a 30-year lifespan, and the reference carbon price.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		EnergySavingsPerYear:      0,
		MaintenanceSavingsPerYear: 0,
		LifespanYears:             30,
		CarbonPricePerTon:         DefaultCarbonPricePerTon,
	}
}

// Verdict identifies which rung of the recommendation ladder matched.
type Verdict string

// Ladder outcomes in evaluation order. Exactly one applies to any input.
const (
	// VerdictClearWinner: the alternative costs no more than the baseline.
	VerdictClearWinner Verdict = "clear_winner"
	// VerdictWorthIt: the carbon value exceeds the cost premium.
	VerdictWorthIt Verdict = "worth_it"
	// VerdictPaysBack: operational savings repay the premium within half
	// the lifespan.
	VerdictPaysBack Verdict = "pays_back"
	// VerdictQualifiedPositive: a large carbon cut despite an unrecovered
	// premium.
	VerdictQualifiedPositive Verdict = "qualified_positive"
	// VerdictNotRecommended: the premium is not justified by the numbers.
	VerdictNotRecommended Verdict = "not_recommended"
)

// BreakEvenAnalysis is the derived payback assessment for paying a cost
// premium in exchange for carbon savings.
type BreakEvenAnalysis struct {
	// PaybackYears is CostPremium divided by annual operational savings.
	// nil when there are no annual savings (no operational payback path).
	PaybackYears *float64 `json:"paybackYears"`
	// CarbonPriceBreakEven is the $/ton carbon price needed to justify the
	// premium. +Inf when CarbonSavings <= 0 (no carbon benefit can justify
	// any premium).
	CarbonPriceBreakEven float64 `json:"carbonPriceBreakEven"`
	// TotalCostAdvantage is the carbon value at the assumed price minus
	// the premium. Positive means the switch pays for itself on paper.
	TotalCostAdvantage float64 `json:"totalCostAdvantage"`
	// Verdict names the matched ladder rung.
	Verdict Verdict `json:"verdict"`
	// Recommendation is the human-readable framing for the verdict.
	Recommendation string `json:"recommendation"`
}
