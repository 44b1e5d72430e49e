package equiv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForCarbonKg(t *testing.T) {
	tests := []struct {
		name      string
		kg        float64
		wantMiles float64
		wantTrees float64
	}{
		{name: "150 kg", kg: 150, wantMiles: 781.25, wantTrees: 2.5},
		{name: "1 ton", kg: 1000, wantMiles: 5208.333, wantTrees: 16.667},
		{name: "negative sequestration", kg: -120, wantMiles: 625, wantTrees: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eqs := ForCarbonKg(tt.kg)

			require.Len(t, eqs, 3)
			assert.InDelta(t, tt.wantMiles, eqs[0].Value, 0.01)
			assert.InDelta(t, tt.wantTrees, eqs[1].Value, 0.01)
		})
	}
}

func TestForCarbonKgBelowThreshold(t *testing.T) {
	assert.Nil(t, ForCarbonKg(0))
	assert.Nil(t, ForCarbonKg(0.5))
	assert.Nil(t, ForCarbonKg(-0.9))
}

func TestForCarbonKgNonFinite(t *testing.T) {
	assert.Nil(t, ForCarbonKg(math.Inf(1)))
	assert.Nil(t, ForCarbonKg(math.NaN()))
}

func TestFormattedSeparators(t *testing.T) {
	eqs := ForCarbonKg(100000)

	require.Len(t, eqs, 3)
	// 100000 / 0.192 = 520833 miles.
	assert.Equal(t, "520,833", eqs[0].Formatted)
}

func TestFormattedSmallValueKeepsDecimal(t *testing.T) {
	eqs := ForCarbonKg(12)

	require.Len(t, eqs, 3)
	// 12 / 60 = 0.2 trees.
	assert.Equal(t, "0.2", eqs[1].Formatted)
}

func TestSentence(t *testing.T) {
	positive := Sentence(150)
	assert.Contains(t, positive, "Avoids the equivalent of driving ~781 miles")

	negative := Sentence(-150)
	assert.Contains(t, negative, "Adds the equivalent")

	assert.Empty(t, Sentence(0.2))
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "(~781 mi, ~2.5 trees)", Compact(150))
	assert.Empty(t, Compact(0))
}
