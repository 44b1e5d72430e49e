// Package filter narrows material lists with conjunctive, side-effect-free
// predicates. Conjunction is commutative, so predicate order never changes
// the result, and applying the same state twice is idempotent.
package filter

import (
	"strings"

	"github.com/matfocus/matfocus/internal/material"
)

// CostOpenEnded marks the top of the cost range as unbounded. A MaxCost at
// or above this value disables the upper bound.
const CostOpenEnded = 500.0

// RegenerativeMargin is the RIS-over-LIS margin a material must clear to
// count as regenerative.
const RegenerativeMargin = 30.0

// ScoreRange bounds a score filter. The zero value (0, 0) is inactive.
type ScoreRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// active reports whether the range constrains anything.
func (r ScoreRange) active() bool { return r.Min != 0 || r.Max != 0 }

// contains evaluates v against the bounds. Missing scores are passed in
// as 0 by the caller. A zero Max with a positive Min means min-only, so
// the upper bound is treated as open.
func (r ScoreRange) contains(v float64) bool {
	if v < r.Min {
		return false
	}
	return r.Max == 0 || v <= r.Max
}

// State is a multi-field filter. The zero value matches everything.
type State struct {
	// Search matches case-insensitively against name and category.
	Search string `json:"search"`
	// Categories restricts to the listed categories when non-empty.
	Categories []string `json:"categories"`
	// RISRange bounds the Regenerative Impact Score.
	RISRange ScoreRange `json:"risRange"`
	// LISRange bounds the Lifecycle Impact Score.
	LISRange ScoreRange `json:"lisRange"`
	// MaxCarbonKg is the embodied-carbon ceiling. 0 disables it.
	MaxCarbonKg float64 `json:"maxCarbonKg"`
	// MinCost and MaxCost bound cost per unit. MaxCost >= CostOpenEnded
	// means no upper bound.
	MinCost float64 `json:"minCost"`
	MaxCost float64 `json:"maxCost"`
	// RegenerativeOnly keeps materials with (RIS - LIS) > RegenerativeMargin.
	RegenerativeOnly bool `json:"regenerativeOnly"`
}

// Apply returns the materials matching every active predicate, in input
// order. The input slice is never mutated.
func Apply(materials []material.Material, state State) []material.Material {
	result := make([]material.Material, 0, len(materials))
	for _, m := range materials {
		if Matches(m, state) {
			result = append(result, m)
		}
	}
	return result
}

// Matches evaluates the conjunction of all active predicates for a single
// material.
func Matches(m material.Material, state State) bool {
	return matchesSearch(m, state.Search) &&
		matchesCategory(m, state.Categories) &&
		matchesScoreRange(m.RISOrZero(), state.RISRange) &&
		matchesScoreRange(m.LISOrZero(), state.LISRange) &&
		matchesMaxCarbon(m, state.MaxCarbonKg) &&
		matchesCost(m, state.MinCost, state.MaxCost) &&
		matchesRegenerative(m, state.RegenerativeOnly)
}

func matchesSearch(m material.Material, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(m.Name), needle) ||
		strings.Contains(strings.ToLower(m.Category), needle)
}

func matchesCategory(m material.Material, categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	for _, c := range categories {
		if strings.EqualFold(m.Category, c) {
			return true
		}
	}
	return false
}

func matchesScoreRange(score float64, r ScoreRange) bool {
	if !r.active() {
		return true
	}
	return r.contains(score)
}

func matchesMaxCarbon(m material.Material, maxCarbon float64) bool {
	if maxCarbon == 0 {
		return true
	}
	return m.CarbonOrZero() <= maxCarbon
}

func matchesCost(m material.Material, minCost, maxCost float64) bool {
	cost := m.CostOrZero()
	if cost < minCost {
		return false
	}
	// The top of the configured range is an open-ended sentinel.
	if maxCost > 0 && maxCost < CostOpenEnded && cost > maxCost {
		return false
	}
	return true
}

func matchesRegenerative(m material.Material, regenerativeOnly bool) bool {
	if !regenerativeOnly {
		return true
	}
	return m.RISOrZero()-m.LISOrZero() > RegenerativeMargin
}
