package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/matfocus/matfocus/internal/format"
	"github.com/matfocus/matfocus/internal/region"
)

func newRegionsCmd() *cobra.Command {
	var baseCost float64
	var output string

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "Show regional cost multipliers",
		Long: `List the supported regions and their cost multipliers, sorted from
cheapest to most expensive. With --cost, also show the adjusted cost in
each region.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			regions := region.SortByMultiplier(region.Regions)

			if output == "json" {
				return writeJSON(cmd.OutOrStdout(), regions)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if baseCost > 0 {
				fmt.Fprintln(w, "ID\tNAME\tMULTIPLIER\tADJUSTED COST")
			} else {
				fmt.Fprintln(w, "ID\tNAME\tMULTIPLIER")
			}
			for _, r := range regions {
				if baseCost > 0 {
					adjusted := region.ApplyRegionalCost(baseCost, r.ID)
					fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", r.ID, r.Name, r.Multiplier, format.FormatCurrency(&adjusted))
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%.2f\n", r.ID, r.Name, r.Multiplier)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Float64Var(&baseCost, "cost", 0, "base cost to adjust per region")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json)")

	return cmd
}
