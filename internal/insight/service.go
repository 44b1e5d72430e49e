package insight

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/matfocus/matfocus/internal/insight/cache"
	"github.com/matfocus/matfocus/internal/logging"
	"github.com/matfocus/matfocus/internal/material"
)

// Service coordinates AI insight generation with caching, duplicate
// suppression, and fallback retention.
//
// Identical score sets reuse cached text instead of re-invoking the
// provider; the cache key rounds scores so float noise does not defeat
// reuse. Concurrent requests for the same key collapse into one provider
// call. On failure the last successfully generated text for the material is
// retained and returned alongside the error, so the UI can keep showing
// something useful next to its "unavailable" notice.
type Service struct {
	provider Provider
	store    cache.Store
	group    singleflight.Group

	mu       sync.RWMutex
	lastGood map[string]Text
}

// NewService wires a provider to a cache store. Pass cache.Disabled{} to
// turn caching off.
func NewService(provider Provider, store cache.Store) *Service {
	return &Service{
		provider: provider,
		store:    store,
		lastGood: make(map[string]Text),
	}
}

// CacheKey builds the composite cache key: material id plus each score
// rounded to one decimal. Missing scores encode as "-" so partial score
// sets get distinct keys.
func CacheKey(input GenerateInput) string {
	return fmt.Sprintf("%s|%s|%s|%s",
		input.MaterialID,
		roundedKeyPart(input.LIS),
		roundedKeyPart(input.RIS),
		roundedKeyPart(input.CPI))
}

func roundedKeyPart(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

// Generate returns AI insight text for the input.
//
// Cache hits return immediately with the stored text. On a miss the
// provider is invoked once per key regardless of concurrent callers. On
// provider failure Generate returns the retained last-good text for the
// material (zero Text if none exists) together with the error; callers
// surface the error state without discarding usable content.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (Text, error) {
	log := logging.FromContext(ctx)
	key := CacheKey(input)

	if cached, ok := s.store.Get(key); ok {
		log.Debug().
			Str("component", "insight").
			Str("operation", "generate").
			Str("cache_key", key).
			Msg("cache hit")
		text := Text{Headline: cached, Source: SourceAI}
		s.retain(input.MaterialID, text)
		return text, nil
	}

	result, err, _ := s.group.Do(key, func() (any, error) {
		generated, genErr := s.provider.GenerateMaterialInsight(ctx, input)
		if genErr != nil {
			return nil, genErr
		}
		return generated, nil
	})
	if err != nil {
		log.Warn().
			Str("component", "insight").
			Str("operation", "generate").
			Str("material_id", input.MaterialID).
			Err(err).
			Msg("AI insight generation failed")
		return s.lastGoodFor(input.MaterialID), err
	}

	generated := result.(GenerateResult)
	text := Text{
		Headline: generated.Text,
		Source:   SourceAI,
		Model:    generated.Model,
	}

	// Best-effort: a storage failure inside Set degrades to a future miss.
	s.store.Set(key, generated.Text)
	s.retain(input.MaterialID, text)

	return text, nil
}

// GenerateOrStatic returns AI text when possible and otherwise falls back
// to the deterministic static derivation for the material. The returned
// error, when non-nil, reports why AI text was unavailable even though the
// returned Text is usable.
func (s *Service) GenerateOrStatic(ctx context.Context, m material.Material) (Text, error) {
	text, err := s.Generate(ctx, GenerateInput{
		MaterialID:   m.ID,
		MaterialName: m.Name,
		LIS:          m.LIS,
		RIS:          m.RIS,
		CPI:          m.CPI,
	})
	if err == nil {
		return text, nil
	}
	if text.Headline != "" {
		// Retained earlier AI text beats regenerating static prose.
		return text, err
	}
	return StaticText(m), err
}

func (s *Service) retain(materialID string, text Text) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastGood[materialID] = text
}

func (s *Service) lastGoodFor(materialID string) Text {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastGood[materialID]
}
