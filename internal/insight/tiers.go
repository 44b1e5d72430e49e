package insight

// Tier classification cutoffs. Each metric has two thresholds splitting it
// into three tiers; the middle tier is inclusive of its upper bound.
const (
	// LISLowMax: LIS at or below this is "low" impact.
	LISLowMax = 30.0
	// LISModerateMax: LIS at or below this (and above LISLowMax) is
	// "moderate"; above is "elevated".
	LISModerateMax = 60.0

	// RISStrongMin: RIS at or above this is "strong".
	RISStrongMin = 70.0
	// RISBalancedMin: RIS at or above this (and below RISStrongMin) is
	// "balanced"; below is "emerging".
	RISBalancedMin = 40.0

	// CPIEfficientMax: CPI at or below this is "efficient".
	CPIEfficientMax = 35.0
	// CPIMidRangeMax: CPI at or below this (and above CPIEfficientMax) is
	// "mid-range"; above is "premium".
	CPIMidRangeMax = 65.0
)

// LISTier returns "low", "moderate", or "elevated" for a lifecycle impact
// score.
func LISTier(lis float64) string {
	switch {
	case lis <= LISLowMax:
		return "low"
	case lis <= LISModerateMax:
		return "moderate"
	default:
		return "elevated"
	}
}

// RISTier returns "strong", "balanced", or "emerging" for a regenerative
// impact score.
func RISTier(ris float64) string {
	switch {
	case ris >= RISStrongMin:
		return "strong"
	case ris >= RISBalancedMin:
		return "balanced"
	default:
		return "emerging"
	}
}

// CPITier returns "efficient", "mid-range", or "premium" for a
// cost-performance index.
func CPITier(cpi float64) string {
	switch {
	case cpi <= CPIEfficientMax:
		return "efficient"
	case cpi <= CPIMidRangeMax:
		return "mid-range"
	default:
		return "premium"
	}
}

// ClassifyQuadrant maps the LIS/RIS combination onto the four quadrants:
// low LIS + strong RIS is regenerative, high LIS + weak RIS is problematic,
// and the mixed corners are transitional (clean but not circular) and
// costly (circular but carbon-heavy). Missing scores yield QuadrantUnknown.
func ClassifyQuadrant(lis, ris *float64) Quadrant {
	if lis == nil || ris == nil {
		return QuadrantUnknown
	}
	lowImpact := *lis <= LISModerateMax
	strongRegen := *ris >= RISBalancedMin

	switch {
	case lowImpact && strongRegen:
		return QuadrantRegenerative
	case lowImpact && !strongRegen:
		return QuadrantTransitional
	case !lowImpact && strongRegen:
		return QuadrantCostly
	default:
		return QuadrantProblematic
	}
}

// ClassifyCPIBand maps a CPI value onto its band. Missing values yield
// CPIBandUnknown.
func ClassifyCPIBand(cpi *float64) CPIBand {
	if cpi == nil {
		return CPIBandUnknown
	}
	switch CPITier(*cpi) {
	case "efficient":
		return CPIBandEfficient
	case "mid-range":
		return CPIBandMidRange
	default:
		return CPIBandPremium
	}
}
