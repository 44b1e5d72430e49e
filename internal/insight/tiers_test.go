package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matfocus/matfocus/internal/material"
)

func TestLISTier(t *testing.T) {
	tests := []struct {
		lis  float64
		want string
	}{
		{0, "low"},
		{30, "low"}, // boundary inclusive
		{30.1, "moderate"},
		{60, "moderate"},
		{60.1, "elevated"},
		{120, "elevated"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LISTier(tt.lis), "LIS %v", tt.lis)
	}
}

func TestRISTier(t *testing.T) {
	tests := []struct {
		ris  float64
		want string
	}{
		{100, "strong"},
		{70, "strong"},
		{69.9, "balanced"},
		{40, "balanced"},
		{39.9, "emerging"},
		{0, "emerging"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RISTier(tt.ris), "RIS %v", tt.ris)
	}
}

func TestCPITier(t *testing.T) {
	tests := []struct {
		cpi  float64
		want string
	}{
		{0, "efficient"},
		{35, "efficient"},
		{35.1, "mid-range"},
		{65, "mid-range"},
		{65.1, "premium"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CPITier(tt.cpi), "CPI %v", tt.cpi)
	}
}

func TestClassifyQuadrant(t *testing.T) {
	tests := []struct {
		name string
		lis  *float64
		ris  *float64
		want Quadrant
	}{
		{"low impact strong regen", material.Float(24), material.Float(78), QuadrantRegenerative},
		{"low impact weak regen", material.Float(24), material.Float(20), QuadrantTransitional},
		{"high impact strong regen", material.Float(80), material.Float(75), QuadrantCostly},
		{"high impact weak regen", material.Float(80), material.Float(20), QuadrantProblematic},
		{"missing LIS", nil, material.Float(50), QuadrantUnknown},
		{"missing RIS", material.Float(50), nil, QuadrantUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyQuadrant(tt.lis, tt.ris))
		})
	}
}

func TestClassifyCPIBand(t *testing.T) {
	assert.Equal(t, CPIBandEfficient, ClassifyCPIBand(material.Float(9.1)))
	assert.Equal(t, CPIBandMidRange, ClassifyCPIBand(material.Float(41.7)))
	assert.Equal(t, CPIBandPremium, ClassifyCPIBand(material.Float(70)))
	assert.Equal(t, CPIBandUnknown, ClassifyCPIBand(nil))
}

func TestDeriveScores(t *testing.T) {
	m := material.Material{
		ID: "rammed_earth", Name: "Rammed Earth",
		LIS: material.Float(24.5), RIS: material.Float(78), CPI: material.Float(9.1),
		TotalCarbonKg: material.Float(28),
	}

	scores := DeriveScores(m)

	assert.Equal(t, QuadrantRegenerative, scores.Quadrant)
	assert.Equal(t, CPIBandEfficient, scores.CPIBand)
	if assert.NotNil(t, scores.ParisAlignment) {
		assert.InDelta(t, (1-28.0/75.0)*100, *scores.ParisAlignment, 1e-9)
	}
}

func TestDeriveScoresClampsParisAlignment(t *testing.T) {
	// Carbon-negative material: fully aligned, not >100%.
	m := material.Material{ID: "hempcrete", Name: "Hempcrete", TotalCarbonKg: material.Float(-12)}
	scores := DeriveScores(m)
	if assert.NotNil(t, scores.ParisAlignment) {
		assert.InDelta(t, 100, *scores.ParisAlignment, 1e-9)
	}

	// Far over budget: clamped at 0.
	m.TotalCarbonKg = material.Float(400)
	scores = DeriveScores(m)
	if assert.NotNil(t, scores.ParisAlignment) {
		assert.Zero(t, *scores.ParisAlignment)
	}

	// Missing carbon: no alignment figure at all.
	m.TotalCarbonKg = nil
	assert.Nil(t, DeriveScores(m).ParisAlignment)
}
