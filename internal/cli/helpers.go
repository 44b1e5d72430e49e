package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/matfocus/matfocus/internal/material"
)

// loadCatalog opens the configured material catalog (embedded when no path
// is set).
func loadCatalog(cmd *cobra.Command, state *appState) (*material.Catalog, error) {
	return material.LoadCatalog(cmd.Context(), state.cfg.CatalogPath)
}

// writeJSON renders v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
