package insight

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/matfocus/matfocus/internal/format"
	"github.com/matfocus/matfocus/internal/logging"
)

// defaultGeminiModel is used when config does not name a model.
const defaultGeminiModel = "gemini-2.0-flash"

// GeminiProvider generates insight text through Google's Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini-backed provider. An empty API key
// returns ErrProviderUnavailable so callers can degrade to static text
// without special-casing construction.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, ErrProviderUnavailable
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &GeminiProvider{client: client, model: model}, nil
}

// GenerateMaterialInsight implements Provider.
func (p *GeminiProvider) GenerateMaterialInsight(
	ctx context.Context,
	input GenerateInput,
) (GenerateResult, error) {
	log := logging.FromContext(ctx)

	prompt := buildPrompt(input)

	log.Debug().
		Str("component", "insight").
		Str("operation", "generate_ai").
		Str("material_id", input.MaterialID).
		Str("model", p.model).
		Msg("requesting AI insight")

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("Gemini generation failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return GenerateResult{}, fmt.Errorf("Gemini returned an empty response for %q", input.MaterialID)
	}

	return GenerateResult{Text: text, Model: p.model}, nil
}

// buildPrompt renders the scores through the canonical formatter so the
// model sees the same strings the user does.
func buildPrompt(input GenerateInput) string {
	var b strings.Builder
	name := input.MaterialName
	if name == "" {
		name = input.MaterialID
	}

	fmt.Fprintf(&b, "You are a building-material sustainability analyst. ")
	fmt.Fprintf(&b, "Write a concise two-sentence insight for the material %q.\n", name)
	fmt.Fprintf(&b, "Lifecycle Impact Score (lower is better): %s\n", format.FormatScore(input.LIS))
	fmt.Fprintf(&b, "Regenerative Impact Score (higher is better, 0-100): %s\n", format.FormatScore(input.RIS))
	fmt.Fprintf(&b, "Cost-Performance Index: %s\n", format.FormatCPI(input.CPI))
	if input.Context != "" {
		fmt.Fprintf(&b, "Context: %s\n", input.Context)
	}
	fmt.Fprintf(&b, "Do not invent numbers; treat %q as missing data.", format.Placeholder)
	return b.String()
}
