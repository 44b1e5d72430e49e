package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/matfocus/matfocus/internal/analysis"
	"github.com/matfocus/matfocus/internal/equiv"
	"github.com/matfocus/matfocus/internal/export"
	"github.com/matfocus/matfocus/internal/format"
	"github.com/matfocus/matfocus/internal/logging"
	"github.com/matfocus/matfocus/internal/material"
	"github.com/matfocus/matfocus/internal/region"
)

// compareParams holds the compare command's flags.
type compareParams struct {
	Region             string
	CarbonPrice        float64
	EnergySavings      float64
	MaintenanceSavings float64
	LifespanYears      float64
	Output             string
}

// comparisonResult is the compare command's JSON shape.
type comparisonResult struct {
	Baseline    material.Material          `json:"baseline"`
	Alternative material.Material          `json:"alternative"`
	Region      string                     `json:"region,omitempty"`
	Metrics     analysis.CostCarbonMetrics `json:"metrics"`
	BreakEven   analysis.BreakEvenAnalysis `json:"breakEven"`
	// Equivalencies translate the carbon savings into relatable terms.
	Equivalencies []equiv.Equivalency `json:"equivalencies,omitempty"`
	// ShareURL reproduces this comparison in the web UI.
	ShareURL string `json:"shareUrl,omitempty"`
}

func newCompareCmd(state *appState) *cobra.Command {
	var params compareParams

	cmd := &cobra.Command{
		Use:   "compare <baseline-id> <alternative-id>",
		Short: "Compare an alternative material against a baseline",
		Long: `Compare two catalog materials: cost premium, carbon savings, break-even
payback, and a recommendation. Costs can be adjusted for a region with
--region.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeCompare(cmd, state, args[0], args[1], params)
		},
	}

	cmd.Flags().StringVar(&params.Region, "region", "", "region id for cost adjustment (see 'matfocus regions')")
	cmd.Flags().Float64Var(&params.CarbonPrice, "carbon-price", 0,
		"carbon price in $/ton (0 = config default)")
	cmd.Flags().Float64Var(&params.EnergySavings, "energy-savings", 0, "annual energy savings in dollars")
	cmd.Flags().Float64Var(&params.MaintenanceSavings, "maintenance-savings", 0,
		"annual maintenance savings in dollars")
	cmd.Flags().Float64Var(&params.LifespanYears, "lifespan", 0, "assembly lifespan in years (0 = default)")
	cmd.Flags().StringVarP(&params.Output, "output", "o", "table", "output format (table, json)")

	return cmd
}

func executeCompare(cmd *cobra.Command, state *appState, baselineID, alternativeID string, params compareParams) error {
	log := logging.FromContext(cmd.Context())

	catalog, err := loadCatalog(cmd, state)
	if err != nil {
		return err
	}
	baseline, err := catalog.Get(baselineID)
	if err != nil {
		return err
	}
	alternative, err := catalog.Get(alternativeID)
	if err != nil {
		return err
	}

	if params.Region != "" {
		if _, ok := region.Lookup(params.Region); !ok {
			return fmt.Errorf("unknown region %q, run 'matfocus regions' to list region ids", params.Region)
		}
		baseline = applyRegion(baseline, params.Region)
		alternative = applyRegion(alternative, params.Region)
	}

	assumptions := analysis.DefaultAssumptions()
	assumptions.CarbonPricePerTon = state.cfg.CarbonPricePerTon
	if params.CarbonPrice > 0 {
		assumptions.CarbonPricePerTon = params.CarbonPrice
	}
	assumptions.EnergySavingsPerYear = params.EnergySavings
	assumptions.MaintenanceSavingsPerYear = params.MaintenanceSavings
	if params.LifespanYears > 0 {
		assumptions.LifespanYears = params.LifespanYears
	}

	result := comparisonResult{
		Baseline:    baseline,
		Alternative: alternative,
		Region:      params.Region,
		Metrics:     analysis.CalculateCostCarbonMetrics(baseline, alternative),
		BreakEven:   analysis.CalculateBreakEven(baseline, alternative, assumptions),
	}
	result.Equivalencies = equiv.ForCarbonKg(result.Metrics.CarbonSavings)

	if shareURL, shareErr := export.BuildShareURL(state.cfg.ShareBaseURL, export.ShareParams{
		MaterialIDs: []string{baselineID, alternativeID},
	}); shareErr == nil {
		result.ShareURL = shareURL
	}

	log.Debug().
		Str("component", "cli").
		Str("operation", "compare").
		Str("baseline", baselineID).
		Str("alternative", alternativeID).
		Str("verdict", string(result.BreakEven.Verdict)).
		Msg("comparison computed")

	if params.Output == "json" {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	renderComparison(cmd, result)
	return nil
}

// applyRegion returns a copy of m with its cost adjusted for the region.
func applyRegion(m material.Material, regionID string) material.Material {
	if m.CostPerUnit == nil {
		return m
	}
	adjusted := region.ApplyRegionalCost(*m.CostPerUnit, regionID)
	m.CostPerUnit = &adjusted
	return m
}

func renderComparison(cmd *cobra.Command, result comparisonResult) {
	cmd.Printf("%s vs %s", result.Baseline.Name, result.Alternative.Name)
	if result.Region != "" {
		cmd.Printf(" (%s)", result.Region)
	}
	cmd.Println()
	cmd.Println()

	m := result.Metrics
	cmd.Printf("  Cost premium:       %s (%s)\n",
		format.FormatCurrency(&m.CostPremium), format.FormatSignedPercent(&m.CostPremiumPercent))
	cmd.Printf("  Carbon savings:     %s (%s)\n",
		format.FormatCarbon(&m.CarbonSavings), format.FormatSignedPercent(&m.CarbonSavingsPercent))
	if sentence := equiv.Sentence(m.CarbonSavings); sentence != "" {
		cmd.Printf("                      %s\n", sentence)
	}
	cmd.Printf("  Cost per kg saved:  %s\n", format.FormatCurrency(&m.CostPerKgCO2Saved))
	cmd.Printf("  Carbon value:       %s\n", format.FormatCurrency(&m.CarbonPriceEquivalent))
	cmd.Println()

	be := result.BreakEven
	if be.PaybackYears != nil {
		cmd.Printf("  Payback:            %.1f years\n", *be.PaybackYears)
	}
	if math.IsInf(be.CarbonPriceBreakEven, 1) {
		cmd.Println("  Break-even price:   no carbon price justifies the premium")
	} else {
		cmd.Printf("  Break-even price:   %s/ton\n", format.FormatCurrency(&be.CarbonPriceBreakEven))
	}
	cmd.Printf("  Net advantage:      %s\n", format.FormatCurrency(&be.TotalCostAdvantage))
	cmd.Println()
	cmd.Printf("  Recommendation:     %s\n", be.Recommendation)
	if result.ShareURL != "" {
		cmd.Println()
		cmd.Printf("  Share:              %s\n", result.ShareURL)
	}
}
