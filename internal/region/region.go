// Package region applies market cost multipliers to baseline material costs.
//
// The region table is a static ordered list, immutable at runtime. Lookups
// by unknown id are not errors: the baseline cost passes through unchanged.
package region

import (
	"math"
	"sort"
)

// Region describes a market relative to the national cost baseline.
type Region struct {
	// ID is the stable lookup key (e.g. "us-southwest").
	ID string `yaml:"id" json:"id"`
	// Name is the display name.
	Name string `yaml:"name" json:"name"`
	// Multiplier scales a national baseline cost. 1.0 is the baseline.
	Multiplier float64 `yaml:"multiplier" json:"multiplier"`
	// Description summarizes the market conditions.
	Description string `yaml:"description" json:"description"`
}

// BaselineMultiplier is the national baseline (no adjustment).
const BaselineMultiplier = 1.0

// Regions is the static market table, in canonical display order. Ties on
// multiplier are broken by this order.
//
//nolint:gochecknoglobals // Static reference data, immutable at runtime.
var Regions = []Region{
	{ID: "us-national", Name: "US National Baseline", Multiplier: 1.00, Description: "Blended national average for material and labor costs"},
	{ID: "us-northeast", Name: "US Northeast", Multiplier: 1.18, Description: "High labor costs and dense urban logistics"},
	{ID: "us-west-coast", Name: "US West Coast", Multiplier: 1.24, Description: "Highest combined material and labor premiums"},
	{ID: "us-southwest", Name: "US Southwest", Multiplier: 0.94, Description: "Favorable labor market, strong earthen-building trades"},
	{ID: "us-southeast", Name: "US Southeast", Multiplier: 0.91, Description: "Lowest regional labor costs"},
	{ID: "us-midwest", Name: "US Midwest", Multiplier: 0.97, Description: "Near-baseline costs with good timber supply"},
	{ID: "us-mountain", Name: "US Mountain West", Multiplier: 1.06, Description: "Transport premiums to remote sites"},
}

// RegionalDifference compares the same base cost across two markets.
type RegionalDifference struct {
	// FromCost is the adjusted cost in the "from" region.
	FromCost float64 `json:"fromCost"`
	// ToCost is the adjusted cost in the "to" region.
	ToCost float64 `json:"toCost"`
	// Difference is ToCost minus FromCost.
	Difference float64 `json:"difference"`
	// PercentDifference is the difference relative to FromCost. ±Inf/NaN
	// when FromCost is zero.
	PercentDifference float64 `json:"percentDifference"`
}

// Lookup returns the region with the given id and whether it exists.
func Lookup(regionID string) (Region, bool) {
	for _, r := range Regions {
		if r.ID == regionID {
			return r, true
		}
	}
	return Region{}, false
}

// ApplyRegionalCost scales baseCost by the region's multiplier. An unknown
// regionID falls back to the unmodified base cost rather than erroring.
func ApplyRegionalCost(baseCost float64, regionID string) float64 {
	r, ok := Lookup(regionID)
	if !ok {
		return baseCost
	}
	return baseCost * r.Multiplier
}

// CalculateRegionalDifference adjusts baseCost into both markets and
// reports the delta relative to the "from" cost.
func CalculateRegionalDifference(baseCost float64, fromID, toID string) RegionalDifference {
	fromCost := ApplyRegionalCost(baseCost, fromID)
	toCost := ApplyRegionalCost(baseCost, toID)
	diff := toCost - fromCost

	return RegionalDifference{
		FromCost:          fromCost,
		ToCost:            toCost,
		Difference:        diff,
		PercentDifference: diff / fromCost * 100,
	}
}

// SortByMultiplier returns a copy of regions ordered by ascending
// multiplier. The sort is stable: ties keep table order.
func SortByMultiplier(regions []Region) []Region {
	sorted := make([]Region, len(regions))
	copy(sorted, regions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Multiplier < sorted[j].Multiplier
	})
	return sorted
}

// Cheapest returns the region with the lowest multiplier, preferring
// earlier table entries on ties. ok is false for an empty slice.
func Cheapest(regions []Region) (Region, bool) {
	return extremeBy(regions, func(candidate, best float64) bool {
		return candidate < best
	})
}

// MostExpensive returns the region with the highest multiplier, preferring
// earlier table entries on ties. ok is false for an empty slice.
func MostExpensive(regions []Region) (Region, bool) {
	return extremeBy(regions, func(candidate, best float64) bool {
		return candidate > best
	})
}

func extremeBy(regions []Region, better func(candidate, best float64) bool) (Region, bool) {
	if len(regions) == 0 {
		return Region{}, false
	}
	best := regions[0]
	bestVal := best.Multiplier
	for _, r := range regions[1:] {
		if !math.IsNaN(r.Multiplier) && better(r.Multiplier, bestVal) {
			best = r
			bestVal = r.Multiplier
		}
	}
	return best, true
}
