package insight

import (
	"github.com/matfocus/matfocus/internal/material"
)

// ParisBudgetKg is the embodied-carbon budget per functional unit that a
// Paris-aligned assembly must fit within. Materials at or below zero carbon
// are fully aligned.
const ParisBudgetKg = 75.0

// DeriveScores computes the per-request score bundle for a material:
// quadrant, CPI band, and Paris-alignment percentage. RIS components are
// only available when the caller supplies them (e.g. over the HTTP API);
// the catalog does not carry the breakdown.
func DeriveScores(m material.Material) Scores {
	return Scores{
		LIS:            m.LIS,
		RIS:            m.RIS,
		CPI:            m.CPI,
		Quadrant:       ClassifyQuadrant(m.LIS, m.RIS),
		CPIBand:        ClassifyCPIBand(m.CPI),
		ParisAlignment: parisAlignment(m.TotalCarbonKg),
	}
}

// parisAlignment converts embodied carbon into the share of the Paris
// budget left unused, clamped to 0-100.
func parisAlignment(carbonKg *float64) *float64 {
	if carbonKg == nil {
		return nil
	}
	alignment := (1 - *carbonKg/ParisBudgetKg) * 100
	if alignment > 100 {
		alignment = 100
	}
	if alignment < 0 {
		alignment = 0
	}
	return &alignment
}
