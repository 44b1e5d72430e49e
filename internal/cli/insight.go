package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matfocus/matfocus/internal/insight"
	"github.com/matfocus/matfocus/internal/insight/cache"
	"github.com/matfocus/matfocus/internal/logging"
	"github.com/matfocus/matfocus/internal/material"
)

// insightParams holds the insight command's flags.
type insightParams struct {
	UseAI  bool
	Output string
}

func newInsightCmd(state *appState) *cobra.Command {
	var params insightParams

	cmd := &cobra.Command{
		Use:   "insight <material-id>",
		Short: "Derive insight text for a material",
		Long: `Derive explanatory insight for a catalog material. By default the text
comes from the curated registry when the material matches a rule, and
otherwise from the deterministic score-based derivation. With --ai the
text is generated by the configured AI provider, with caching and a
static fallback when the provider is unavailable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeInsight(cmd, state, args[0], params)
		},
	}

	cmd.Flags().BoolVar(&params.UseAI, "ai", false, "generate text with the AI provider")
	cmd.Flags().StringVarP(&params.Output, "output", "o", "text", "output format (text, json)")

	return cmd
}

func executeInsight(cmd *cobra.Command, state *appState, materialID string, params insightParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	catalog, err := loadCatalog(cmd, state)
	if err != nil {
		return err
	}
	m, err := catalog.Get(materialID)
	if err != nil {
		return err
	}

	text, aiErr := deriveInsightText(cmd, state, m, params.UseAI)
	if aiErr != nil {
		log.Warn().
			Str("component", "cli").
			Str("operation", "insight").
			Str("material_id", materialID).
			Err(aiErr).
			Msg("AI text unavailable, using fallback")
	}

	scores := insight.DeriveScores(m)

	if params.Output == "json" {
		return writeJSON(cmd.OutOrStdout(), struct {
			Scores  insight.Scores `json:"scores"`
			Insight insight.Text   `json:"insight"`
		}{scores, text})
	}

	cmd.Printf("%s [%s quadrant, %s band]\n\n", m.Name, scores.Quadrant, scores.CPIBand)
	cmd.Println(text.Headline)
	if text.Details != "" {
		cmd.Println()
		cmd.Println(text.Details)
	}
	cmd.Printf("\n(source: %s", text.Source)
	if text.Model != "" {
		cmd.Printf(", model: %s", text.Model)
	}
	cmd.Println(")")
	if aiErr != nil {
		cmd.PrintErrf("Warning: AI insight unavailable: %v\n", aiErr)
	}
	return nil
}

// deriveInsightText picks the insight path: AI when requested, then the
// canonical registry, then the static derivation. The returned error only
// reports AI unavailability; the Text is always usable.
func deriveInsightText(cmd *cobra.Command, state *appState, m material.Material, useAI bool) (insight.Text, error) {
	ctx := cmd.Context()

	if useAI {
		svc, err := buildInsightService(cmd, state)
		if err != nil {
			return fallbackText(ctx, m), err
		}
		return svc.GenerateOrStatic(ctx, m)
	}

	return fallbackText(ctx, m), nil
}

// fallbackText returns canonical registry text when the material matches a
// rule, and static text otherwise.
func fallbackText(ctx context.Context, m material.Material) insight.Text {
	registry, err := insight.LoadEmbeddedRegistry()
	if err == nil {
		matched := registry.Match(ctx, insight.Context{
			Type:        insight.ContextMaterial,
			PrimaryID:   m.ID,
			MaterialIDs: []string{m.ID},
			Tags:        m.Tags,
		})
		if matched != nil {
			return insight.CanonicalText(*matched)
		}
	}
	return insight.StaticText(m)
}

// buildInsightService wires the AI provider and cache from config.
func buildInsightService(cmd *cobra.Command, state *appState) (*insight.Service, error) {
	ctx := cmd.Context()

	var provider insight.Provider = insight.UnavailableProvider{}
	if state.cfg.AI.APIKey != "" {
		gemini, err := insight.NewGeminiProvider(ctx, state.cfg.AI.APIKey, state.cfg.AI.Model)
		if err != nil {
			return nil, err
		}
		provider = gemini
	}

	var store cache.Store = cache.Disabled{}
	if state.cfg.Cache.Enabled {
		dir, err := state.cfg.CacheDir()
		if err == nil {
			ttl := time.Duration(state.cfg.Cache.TTLSeconds) * time.Second
			if fileStore, storeErr := cache.NewFileStore(dir, ttl); storeErr == nil {
				store = fileStore
			}
		}
		// Cache setup failures degrade to no caching, never to a hard error.
	}

	return insight.NewService(provider, store), nil
}
