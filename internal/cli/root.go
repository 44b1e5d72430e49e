// Package cli wires the matfocus command tree.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matfocus/matfocus/internal/config"
	"github.com/matfocus/matfocus/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// appState carries loaded configuration and the logger across commands.
type appState struct {
	cfg    config.Config
	logger zerolog.Logger
}

// NewRootCmd creates the root Cobra command for the matfocus CLI.
func NewRootCmd(ver string) *cobra.Command {
	state := &appState{}

	cmd := &cobra.Command{
		Use:     "matfocus",
		Short:   "Compare building materials on cost and carbon",
		Long:    "matfocus: compare building materials on lifecycle impact, regenerative value, and cost-performance",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				cfg.Logging.Level = "debug"
			}
			if err := config.InitLogger(cfg.Logging); err != nil {
				return err
			}

			state.cfg = cfg
			state.logger = config.GetLogger()
			cmd.SetContext(logging.WithContext(cmd.Context(), state.logger))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			config.CloseLogFile()
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to config file (default ~/.matfocus/config.yaml)")

	cmd.AddCommand(
		newListCmd(state),
		newCompareCmd(state),
		newRegionsCmd(),
		newInsightCmd(state),
		newExportCmd(state),
		newServeCmd(state),
		newTUICmd(state),
	)

	return cmd
}

const rootCmdExample = `  # List catalog materials, filtered
  matfocus list --category insulation --max-carbon 50

  # Compare an alternative against a baseline
  matfocus compare concrete_cmu rammed_earth --region us-northeast

  # Show regional cost multipliers
  matfocus regions --cost 100

  # Derive insight text for a material
  matfocus insight rammed_earth --ai

  # Export a comparison
  matfocus export csv --out materials.csv
  matfocus export pdf --out report.pdf --ids rammed_earth,concrete_cmu

  # Run the insight backend
  matfocus serve --addr :8080`
