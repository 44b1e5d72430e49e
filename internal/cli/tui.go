package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matfocus/matfocus/internal/tui"
)

func newTUICmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse materials interactively",
		Long: `Open the interactive material browser: a filterable catalog table with a
detail pane and on-demand AI insight generation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return fmt.Errorf("the interactive browser requires a terminal")
			}

			catalog, err := loadCatalog(cmd, state)
			if err != nil {
				return err
			}
			insights, err := buildInsightService(cmd, state)
			if err != nil {
				return err
			}
			return tui.Run(catalog.Materials(), insights)
		},
	}
}
