package insight

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matfocus/matfocus/internal/insight/cache"
	"github.com/matfocus/matfocus/internal/material"
)

// stubProvider counts invocations and returns canned results.
type stubProvider struct {
	calls   atomic.Int64
	release chan struct{} // when non-nil, blocks until closed
	text    string
	err     error
}

func (p *stubProvider) GenerateMaterialInsight(
	ctx context.Context,
	input GenerateInput,
) (GenerateResult, error) {
	p.calls.Add(1)
	if p.release != nil {
		<-p.release
	}
	if p.err != nil {
		return GenerateResult{}, p.err
	}
	return GenerateResult{Text: p.text, Model: "stub-model"}, nil
}

func sampleInput() GenerateInput {
	return GenerateInput{
		MaterialID:   "rammed_earth",
		MaterialName: "Rammed Earth",
		LIS:          material.Float(24.5),
		RIS:          material.Float(78),
		CPI:          material.Float(9.1),
	}
}

func TestGenerateCachesResult(t *testing.T) {
	provider := &stubProvider{text: "generated insight"}
	svc := NewService(provider, cache.NewMemoryStore())

	first, err := svc.Generate(context.Background(), sampleInput())
	require.NoError(t, err)
	assert.Equal(t, "generated insight", first.Headline)
	assert.Equal(t, SourceAI, first.Source)
	assert.Equal(t, "stub-model", first.Model)

	second, err := svc.Generate(context.Background(), sampleInput())
	require.NoError(t, err)
	assert.Equal(t, first.Headline, second.Headline)

	assert.Equal(t, int64(1), provider.calls.Load(), "identical rounded scores must reuse cached text")
}

func TestGenerateDistinctScoresDistinctKeys(t *testing.T) {
	provider := &stubProvider{text: "text"}
	svc := NewService(provider, cache.NewMemoryStore())

	_, err := svc.Generate(context.Background(), sampleInput())
	require.NoError(t, err)

	changed := sampleInput()
	changed.CPI = material.Float(41.7)
	_, err = svc.Generate(context.Background(), changed)
	require.NoError(t, err)

	assert.Equal(t, int64(2), provider.calls.Load())
}

func TestCacheKeyRounding(t *testing.T) {
	a := sampleInput()
	b := sampleInput()
	// Sub-decimal noise rounds away.
	b.LIS = material.Float(24.51)
	assert.Equal(t, CacheKey(a), CacheKey(b))

	b.LIS = material.Float(24.6)
	assert.NotEqual(t, CacheKey(a), CacheKey(b))

	// Missing scores encode distinctly from zero scores.
	b = sampleInput()
	b.LIS = nil
	c := sampleInput()
	c.LIS = material.Float(0)
	assert.NotEqual(t, CacheKey(b), CacheKey(c))
}

func TestGenerateFailureRetainsLastGood(t *testing.T) {
	provider := &stubProvider{text: "good text"}
	svc := NewService(provider, cache.NewMemoryStore())

	_, err := svc.Generate(context.Background(), sampleInput())
	require.NoError(t, err)

	// Same material, new scores, provider now failing.
	provider.err = errors.New("network down")
	changed := sampleInput()
	changed.LIS = material.Float(40)

	got, err := svc.Generate(context.Background(), changed)
	require.Error(t, err)
	assert.Equal(t, "good text", got.Headline, "failure must retain the last good text, not discard it")
}

func TestGenerateFailureWithoutHistory(t *testing.T) {
	provider := &stubProvider{err: ErrProviderUnavailable}
	svc := NewService(provider, cache.NewMemoryStore())

	got, err := svc.Generate(context.Background(), sampleInput())
	require.ErrorIs(t, err, ErrProviderUnavailable)
	assert.Empty(t, got.Headline)
}

func TestGenerateSingleflightSuppressesDuplicates(t *testing.T) {
	provider := &stubProvider{text: "text", release: make(chan struct{})}
	svc := NewService(provider, cache.NewMemoryStore())

	const concurrent = 8
	var wg sync.WaitGroup
	wg.Add(concurrent)
	for range concurrent {
		go func() {
			defer wg.Done()
			_, _ = svc.Generate(context.Background(), sampleInput())
		}()
	}

	// Let the goroutines pile up behind the in-flight call, then release.
	close(provider.release)
	wg.Wait()

	assert.LessOrEqual(t, provider.calls.Load(), int64(2),
		"concurrent identical requests must collapse into at most a couple of provider calls")
}

func TestGenerateCacheFailureDegradesToMiss(t *testing.T) {
	provider := &stubProvider{text: "text"}
	svc := NewService(provider, cache.Disabled{})

	_, err := svc.Generate(context.Background(), sampleInput())
	require.NoError(t, err)
	_, err = svc.Generate(context.Background(), sampleInput())
	require.NoError(t, err)

	// Disabled cache: every call reaches the provider, nothing breaks.
	assert.Equal(t, int64(2), provider.calls.Load())
}

func TestGenerateOrStaticFallsBack(t *testing.T) {
	svc := NewService(UnavailableProvider{}, cache.Disabled{})
	m := material.Material{
		ID: "rammed_earth", Name: "Rammed Earth",
		LIS: material.Float(24.5), RIS: material.Float(78), CPI: material.Float(9.1),
	}

	text, err := svc.GenerateOrStatic(context.Background(), m)

	require.ErrorIs(t, err, ErrProviderUnavailable)
	assert.Equal(t, SourceStatic, text.Source)
	assert.NotEmpty(t, text.Headline)
}

func TestGenerateOrStaticPrefersAI(t *testing.T) {
	svc := NewService(&stubProvider{text: "ai text"}, cache.NewMemoryStore())
	m := material.Material{ID: "hempcrete", Name: "Hempcrete"}

	text, err := svc.GenerateOrStatic(context.Background(), m)

	require.NoError(t, err)
	assert.Equal(t, SourceAI, text.Source)
	assert.Equal(t, "ai text", text.Headline)
}
