package insight

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := LoadEmbeddedRegistry()
	require.NoError(t, err)
	require.GreaterOrEqual(t, reg.Len(), 3)
	return reg
}

func TestMatchExactIDSet(t *testing.T) {
	reg := loadRegistry(t)

	got := reg.Match(context.Background(), Context{
		Type:        ContextComparison,
		MaterialIDs: []string{"rammed_earth", "hempcrete", "wood_framing_2x6"},
	})

	require.NotNil(t, got)
	assert.Equal(t, "insight-001", got.ID)
}

func TestMatchIDSetOrderFree(t *testing.T) {
	reg := loadRegistry(t)

	got := reg.Match(context.Background(), Context{
		MaterialIDs: []string{"wood_framing_2x6", "rammed_earth", "hempcrete"},
	})

	require.NotNil(t, got)
	assert.Equal(t, "insight-001", got.ID)
}

func TestMatchSubsetDoesNotMatchExactRule(t *testing.T) {
	reg := loadRegistry(t)

	// Two of insight-001's three rule ids: the exact rule must not fire,
	// but the fallback overlap against related_materials may.
	got := reg.Match(context.Background(), Context{
		MaterialIDs: []string{"rammed_earth", "hempcrete"},
	})

	require.NotNil(t, got)
	assert.Equal(t, "insight-001", got.ID, "fallback overlap should pick the first related insight")
}

func TestMatchTag(t *testing.T) {
	reg := loadRegistry(t)

	got := reg.Match(context.Background(), Context{
		Type: ContextMaterial,
		Tags: []string{"carbon-negative"},
	})

	require.NotNil(t, got)
	assert.Equal(t, "insight-003", got.ID)
}

func TestMatchRuleOrderWins(t *testing.T) {
	reg := loadRegistry(t)

	// Exact id set for insight-002 plus the carbon-negative tag: the id
	// rule appears earlier in the document, so it wins.
	got := reg.Match(context.Background(), Context{
		MaterialIDs: []string{"cellulose_insulation", "xps_insulation"},
		Tags:        []string{"carbon-negative"},
	})

	require.NotNil(t, got)
	assert.Equal(t, "insight-002", got.ID)
}

func TestMatchNoOverlapReturnsNil(t *testing.T) {
	reg := loadRegistry(t)

	got := reg.Match(context.Background(), Context{
		Type:        ContextMaterial,
		MaterialIDs: []string{"unobtainium"},
		Tags:        []string{"nonexistent-tag"},
	})

	assert.Nil(t, got, "a non-overlapping context must return nil, never a guess")
}

func TestMatchEmptyContextReturnsNil(t *testing.T) {
	reg := loadRegistry(t)
	assert.Nil(t, reg.Match(context.Background(), Context{}))
}

func TestNewRegistryRejectsDanglingRule(t *testing.T) {
	_, err := NewRegistry(
		[]MatchRule{{InsightID: "missing", Tag: "x"}},
		[]CanonicalInsight{{ID: "present"}},
	)
	assert.Error(t, err)
}

func TestNewRegistryRejectsDuplicateIDs(t *testing.T) {
	_, err := NewRegistry(nil, []CanonicalInsight{{ID: "a"}, {ID: "a"}})
	assert.Error(t, err)
}

func TestCanonicalText(t *testing.T) {
	reg := loadRegistry(t)
	ins := reg.Get("insight-001")
	require.NotNil(t, ins)

	text := CanonicalText(*ins)
	assert.Equal(t, SourceCanonical, text.Source)
	assert.Equal(t, ins.Takeaway, text.Headline)
}
