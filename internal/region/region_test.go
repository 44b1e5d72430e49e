package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRegionalCost(t *testing.T) {
	tests := []struct {
		name     string
		baseCost float64
		regionID string
		want     float64
	}{
		{
			name:     "baseline region is identity",
			baseCost: 100,
			regionID: "us-national",
			want:     100,
		},
		{
			name:     "premium market scales up",
			baseCost: 100,
			regionID: "us-west-coast",
			want:     124,
		},
		{
			name:     "discount market scales down",
			baseCost: 100,
			regionID: "us-southeast",
			want:     91,
		},
		{
			name:     "unknown region falls back to base cost",
			baseCost: 100,
			regionID: "unknown-region-id",
			want:     100,
		},
		{
			name:     "empty region id falls back to base cost",
			baseCost: 42.5,
			regionID: "",
			want:     42.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ApplyRegionalCost(tt.baseCost, tt.regionID), 1e-9)
		})
	}
}

func TestCalculateRegionalDifference(t *testing.T) {
	diff := CalculateRegionalDifference(100, "us-southeast", "us-west-coast")

	assert.InDelta(t, 91, diff.FromCost, 1e-9)
	assert.InDelta(t, 124, diff.ToCost, 1e-9)
	assert.InDelta(t, 33, diff.Difference, 1e-9)
	assert.InDelta(t, 33.0/91.0*100, diff.PercentDifference, 1e-9)
}

func TestCalculateRegionalDifferenceUnknownRegions(t *testing.T) {
	// Both lookups fall back, so the comparison degenerates to zero delta.
	diff := CalculateRegionalDifference(100, "nope", "also-nope")

	assert.InDelta(t, 100, diff.FromCost, 1e-9)
	assert.InDelta(t, 100, diff.ToCost, 1e-9)
	assert.Zero(t, diff.Difference)
	assert.Zero(t, diff.PercentDifference)
}

func TestSortByMultiplierStable(t *testing.T) {
	regions := []Region{
		{ID: "a", Multiplier: 1.1},
		{ID: "b", Multiplier: 0.9},
		{ID: "c", Multiplier: 1.1},
		{ID: "d", Multiplier: 0.9},
	}

	sorted := SortByMultiplier(regions)

	require.Len(t, sorted, 4)
	// Ties keep input order: b before d, a before c.
	assert.Equal(t, []string{"b", "d", "a", "c"},
		[]string{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID})

	// Input slice is untouched.
	assert.Equal(t, "a", regions[0].ID)
}

func TestCheapestAndMostExpensive(t *testing.T) {
	cheapest, ok := Cheapest(Regions)
	require.True(t, ok)
	assert.Equal(t, "us-southeast", cheapest.ID)

	expensive, ok := MostExpensive(Regions)
	require.True(t, ok)
	assert.Equal(t, "us-west-coast", expensive.ID)
}

func TestCheapestTieBreaksByTableOrder(t *testing.T) {
	regions := []Region{
		{ID: "first", Multiplier: 0.9},
		{ID: "second", Multiplier: 0.9},
	}
	cheapest, ok := Cheapest(regions)
	require.True(t, ok)
	assert.Equal(t, "first", cheapest.ID)
}

func TestCheapestEmpty(t *testing.T) {
	_, ok := Cheapest(nil)
	assert.False(t, ok)
}
