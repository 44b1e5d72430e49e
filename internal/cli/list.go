package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/matfocus/matfocus/internal/filter"
	"github.com/matfocus/matfocus/internal/format"
	"github.com/matfocus/matfocus/internal/logging"
	"github.com/matfocus/matfocus/internal/material"
)

// listParams holds the list command's filter flags.
type listParams struct {
	Search           string
	Categories       []string
	MinRIS           float64
	MaxRIS           float64
	MinLIS           float64
	MaxLIS           float64
	MaxCarbon        float64
	MinCost          float64
	MaxCost          float64
	RegenerativeOnly bool
	Output           string
}

func newListCmd(state *appState) *cobra.Command {
	var params listParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog materials with optional filters",
		Long: `List the material catalog. All filters combine with AND; a material
must satisfy every active filter to appear.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeList(cmd, state, params)
		},
	}

	cmd.Flags().StringVar(&params.Search, "search", "", "substring match on name or category")
	cmd.Flags().StringSliceVar(&params.Categories, "category", nil, "restrict to categories (repeatable)")
	cmd.Flags().Float64Var(&params.MinRIS, "min-ris", 0, "minimum regenerative impact score")
	cmd.Flags().Float64Var(&params.MaxRIS, "max-ris", 0, "maximum regenerative impact score")
	cmd.Flags().Float64Var(&params.MinLIS, "min-lis", 0, "minimum lifecycle impact score")
	cmd.Flags().Float64Var(&params.MaxLIS, "max-lis", 0, "maximum lifecycle impact score")
	cmd.Flags().Float64Var(&params.MaxCarbon, "max-carbon", 0, "maximum embodied carbon in kg CO2e")
	cmd.Flags().Float64Var(&params.MinCost, "min-cost", 0, "minimum cost per unit")
	cmd.Flags().Float64Var(&params.MaxCost, "max-cost", 0,
		fmt.Sprintf("maximum cost per unit (%.0f or above means uncapped)", filter.CostOpenEnded))
	cmd.Flags().BoolVar(&params.RegenerativeOnly, "regenerative-only", false,
		"only materials whose RIS exceeds LIS by a wide margin")
	cmd.Flags().StringVarP(&params.Output, "output", "o", "table", "output format (table, json)")

	return cmd
}

func executeList(cmd *cobra.Command, state *appState, params listParams) error {
	log := logging.FromContext(cmd.Context())

	catalog, err := loadCatalog(cmd, state)
	if err != nil {
		return err
	}

	filterState := filter.State{
		Search:           params.Search,
		Categories:       params.Categories,
		RISRange:         filter.ScoreRange{Min: params.MinRIS, Max: params.MaxRIS},
		LISRange:         filter.ScoreRange{Min: params.MinLIS, Max: params.MaxLIS},
		MaxCarbonKg:      params.MaxCarbon,
		MinCost:          params.MinCost,
		MaxCost:          params.MaxCost,
		RegenerativeOnly: params.RegenerativeOnly,
	}
	matched := filter.Apply(catalog.Materials(), filterState)

	log.Debug().
		Str("component", "cli").
		Str("operation", "list").
		Int("total", catalog.Len()).
		Int("matched", len(matched)).
		Msg("filtered catalog")

	if params.Output == "json" {
		return writeJSON(cmd.OutOrStdout(), matched)
	}
	return renderMaterialTable(cmd, matched)
}

func renderMaterialTable(cmd *cobra.Command, materials []material.Material) error {
	if len(materials) == 0 {
		cmd.Println("No materials match the active filters.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tCARBON\tCOST\tLIS\tRIS\tCPI")
	for _, m := range materials {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			m.ID,
			m.Name,
			m.Category,
			format.FormatCarbon(m.TotalCarbonKg),
			format.FormatCurrency(m.CostPerUnit),
			format.FormatScore(m.LIS),
			format.FormatScore(m.RIS),
			format.FormatCPI(m.CPI),
		)
	}
	return w.Flush()
}
