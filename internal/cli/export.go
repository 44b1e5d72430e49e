package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matfocus/matfocus/internal/export"
	"github.com/matfocus/matfocus/internal/logging"
	"github.com/matfocus/matfocus/internal/material"
)

// exportParams holds flags shared by the export subcommands.
type exportParams struct {
	Out          string
	IDs          []string
	Title        string
	ChartPath    string
	Alternatives bool
	AI           bool
}

func newExportCmd(state *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export materials to CSV or PDF",
	}
	cmd.AddCommand(newExportCSVCmd(state), newExportPDFCmd(state))
	return cmd
}

func newExportCSVCmd(state *appState) *cobra.Command {
	var params exportParams

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export materials as CSV",
		Long: `Write the selected materials as CSV. Without --ids the whole catalog is
exported. Missing scores export as empty cells.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			materials, err := selectMaterials(cmd, state, params.IDs)
			if err != nil {
				return err
			}
			return writeToFileOrStdout(cmd, params.Out, func(w io.Writer) error {
				return export.WriteCSV(w, materials)
			})
		},
	}

	cmd.Flags().StringVar(&params.Out, "out", "", "output file (default stdout)")
	cmd.Flags().StringSliceVar(&params.IDs, "ids", nil, "material ids to export (default all)")

	return cmd
}

func newExportPDFCmd(state *appState) *cobra.Command {
	var params exportParams

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Export a comparison report as PDF",
		Long: `Build a PDF comparison report for the selected materials. Missing scores
render as a placeholder dash, matching the on-screen tables.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeExportPDF(cmd, state, params)
		},
	}

	cmd.Flags().StringVar(&params.Out, "out", "report.pdf", "output file")
	cmd.Flags().StringSliceVar(&params.IDs, "ids", nil, "material ids to include (default all)")
	cmd.Flags().StringVar(&params.Title, "title", "Material Comparison Report", "report title")
	cmd.Flags().StringVar(&params.ChartPath, "chart", "", "path to a chart PNG to embed")
	cmd.Flags().BoolVar(&params.Alternatives, "alternatives", false, "include alternative suggestions")
	cmd.Flags().BoolVar(&params.AI, "ai", false, "include an AI-generated insight section")

	return cmd
}

func executeExportPDF(cmd *cobra.Command, state *appState, params exportParams) error {
	log := logging.FromContext(cmd.Context())

	materials, err := selectMaterials(cmd, state, params.IDs)
	if err != nil {
		return err
	}

	report := export.Report{
		ID:                  export.NewReportID(),
		Title:               params.Title,
		GeneratedAt:         time.Now(),
		Materials:           materials,
		ChartPNGPath:        params.ChartPath,
		IncludeAlternatives: params.Alternatives,
	}

	if params.AI && len(materials) > 0 {
		svc, svcErr := buildInsightService(cmd, state)
		if svcErr == nil {
			text, genErr := svc.GenerateOrStatic(cmd.Context(), materials[0])
			if genErr != nil {
				log.Warn().
					Str("component", "cli").
					Str("operation", "export_pdf").
					Err(genErr).
					Msg("AI insight unavailable, report uses fallback text")
			}
			report.Insight = &text
		}
	}

	if err := writeToFileOrStdout(cmd, params.Out, func(w io.Writer) error {
		return export.BuildPDF(w, report)
	}); err != nil {
		return err
	}

	log.Info().
		Str("component", "cli").
		Str("operation", "export_pdf").
		Str("report_id", report.ID).
		Int("materials", len(materials)).
		Str("out", params.Out).
		Msg("report written")
	return nil
}

// selectMaterials resolves --ids against the catalog, defaulting to the
// full catalog.
func selectMaterials(cmd *cobra.Command, state *appState, ids []string) ([]material.Material, error) {
	catalog, err := loadCatalog(cmd, state)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return catalog.Materials(), nil
	}

	materials := make([]material.Material, 0, len(ids))
	for _, id := range ids {
		m, getErr := catalog.Get(id)
		if getErr != nil {
			return nil, getErr
		}
		materials = append(materials, m)
	}
	return materials, nil
}

// writeToFileOrStdout runs write against the named file, or the command's
// stdout when out is empty.
func writeToFileOrStdout(cmd *cobra.Command, out string, write func(io.Writer) error) error {
	if out == "" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	return write(f)
}
