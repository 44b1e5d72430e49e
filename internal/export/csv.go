// Package export serializes material records into CSV rows, PDF documents,
// and shareable URLs. Every numeric cell routes through the format package,
// so exports render the exact strings the UI shows.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/matfocus/matfocus/internal/format"
	"github.com/matfocus/matfocus/internal/material"
)

// CSV column order. ColCPI is exported separately because the CPI column is
// the one deliberate cross-surface exception: it uses an empty-string
// placeholder so spreadsheet cells stay blank, where every other surface
// shows the em dash.
const (
	ColID = iota
	ColName
	ColCategory
	ColCarbon
	ColFunctionalUnit
	ColLIS
	ColRIS
	ColCPI
	ColPrice
	ColBenchmarkRef

	// ColumnCount is the fixed CSV width.
	ColumnCount
)

// csvHeader matches the column constants above.
//
//nolint:gochecknoglobals // Static header row.
var csvHeader = []string{
	"ID", "Name", "Category", "Embodied Carbon", "Functional Unit",
	"LIS", "RIS", "CPI", "Price", "Benchmark",
}

// BuildCSVRow serializes one material into the fixed column order. Missing
// numeric values render as the format package's placeholder, except CPI
// which renders as an empty cell.
func BuildCSVRow(m material.Material) []string {
	row := make([]string, ColumnCount)
	row[ColID] = m.ID
	row[ColName] = m.Name
	row[ColCategory] = m.Category
	row[ColCarbon] = format.FormatCarbon(m.TotalCarbonKg)
	row[ColFunctionalUnit] = m.FunctionalUnit
	row[ColLIS] = format.FormatScore(m.LIS)
	row[ColRIS] = format.FormatScore(m.RIS)
	row[ColCPI] = format.FormatCPIWith(m.CPI, "")
	row[ColPrice] = format.FormatCurrency(m.CostPerUnit)
	row[ColBenchmarkRef] = m.BenchmarkRef
	return row
}

// WriteCSV writes a header plus one row per material. Quoting and internal
// quote doubling follow RFC 4180 via encoding/csv.
func WriteCSV(w io.Writer, materials []material.Material) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, m := range materials {
		if err := cw.Write(BuildCSVRow(m)); err != nil {
			return fmt.Errorf("writing CSV row for %q: %w", m.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}
