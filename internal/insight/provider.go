package insight

import (
	"context"
	"errors"
)

// ErrProviderUnavailable signals that no AI provider is usable in this
// build or environment (typically missing credentials). Callers treat it as
// a normal failure mode and fall back to static or cached text.
var ErrProviderUnavailable = errors.New("AI insight provider not available in this build")

// GenerateInput carries the material context an AI provider generates from.
// Score fields are optional; providers must cope with any subset.
type GenerateInput struct {
	MaterialID   string   `json:"materialId"`
	MaterialName string   `json:"materialName,omitempty"`
	LIS          *float64 `json:"lis,omitempty"`
	RIS          *float64 `json:"ris,omitempty"`
	CPI          *float64 `json:"cpi,omitempty"`
	// Context is free-form framing (e.g. "compared against CMU baseline").
	Context string `json:"context,omitempty"`
}

// GenerateResult is the provider's answer.
type GenerateResult struct {
	// Text is the generated insight prose.
	Text string `json:"text"`
	// Model identifies the model that produced it.
	Model string `json:"model,omitempty"`
}

// Provider generates material insight text. Implementations must respect
// ctx cancellation; a single failure surfaces immediately. Retry is a
// user-initiated action, not an internal policy.
type Provider interface {
	GenerateMaterialInsight(ctx context.Context, input GenerateInput) (GenerateResult, error)
}

// UnavailableProvider always reports ErrProviderUnavailable. Used when no
// credentials are configured.
type UnavailableProvider struct{}

// GenerateMaterialInsight implements Provider.
func (UnavailableProvider) GenerateMaterialInsight(context.Context, GenerateInput) (GenerateResult, error) {
	return GenerateResult{}, ErrProviderUnavailable
}
