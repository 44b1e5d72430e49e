package export

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/oklog/ulid/v2"

	"github.com/matfocus/matfocus/internal/format"
	"github.com/matfocus/matfocus/internal/insight"
	"github.com/matfocus/matfocus/internal/material"
)

// footerBranding is the fixed last line of every generated PDF.
const footerBranding = "Generated by matfocus — material sustainability comparison"

// Report describes one PDF export.
type Report struct {
	// ID is the ULID assigned at build time.
	ID string
	// Title is the document headline.
	Title string
	// GeneratedAt stamps the document; zero means time.Now.
	GeneratedAt time.Time
	// Materials are the comparison subjects, in display order.
	Materials []material.Material
	// ChartPNGPath optionally references a rendered comparison chart. A
	// configured path that cannot be read is a hard error: it indicates a
	// caller bug, not a data condition.
	ChartPNGPath string
	// Insight optionally adds a summary section.
	Insight *insight.Text
	// IncludeAlternatives adds the better-alternatives section when any
	// material lists alternatives.
	IncludeAlternatives bool
}

// NewReportID returns a fresh ULID for a report.
func NewReportID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// PDFCpiString renders a material's CPI for the PDF table. It is the same
// formatter call the UI makes; only the CSV column differs, and only in
// placeholder choice.
func PDFCpiString(m material.Material) string {
	return format.FormatCPI(m.CPI)
}

// BuildPDF assembles the multi-section comparison document and writes it to
// w. Sections in order: title, generation date, enumerated material list,
// optional chart image, comparison table, optional insight summary,
// optional alternatives, footer branding.
func BuildPDF(w io.Writer, report Report) error {
	generatedAt := report.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	var chartPNG []byte
	if report.ChartPNGPath != "" {
		data, err := os.ReadFile(report.ChartPNGPath)
		if err != nil {
			return fmt.Errorf("chart image %q not found for report %s: %w",
				report.ChartPNGPath, report.ID, err)
		}
		chartPNG = data
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, footerBranding, "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// Title and date.
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, report.Title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated "+generatedAt.Format("January 2, 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Enumerated material list.
	pdf.SetFont("Helvetica", "", 11)
	for i, m := range report.Materials {
		pdf.CellFormat(0, 6, fmt.Sprintf("%d. %s (%s)", i+1, m.Name, m.Category), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Optional chart.
	if chartPNG != nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		pdf.RegisterImageOptionsReader("chart", opts, bytes.NewReader(chartPNG))
		pdf.ImageOptions("chart", 15, pdf.GetY(), 180, 0, true, opts, 0, "")
		pdf.Ln(4)
	}

	writeComparisonTable(pdf, report.Materials)

	if report.Insight != nil {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Insight", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, report.Insight.Headline, "", "L", false)
		if report.Insight.Details != "" {
			pdf.MultiCell(0, 5, report.Insight.Details, "", "L", false)
		}
	}

	if report.IncludeAlternatives {
		writeAlternatives(pdf, report.Materials)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering PDF for report %s: %w", report.ID, err)
	}
	return nil
}

// tableColumnWidths for the six comparison columns, in mm.
//
//nolint:gochecknoglobals // Static layout.
var tableColumnWidths = []float64{50, 32, 22, 22, 24, 30}

// writeComparisonTable renders the six-column table: material, carbon, LIS,
// RIS, CPI, price. Every cell value comes from the format package.
func writeComparisonTable(pdf *gofpdf.Fpdf, materials []material.Material) {
	headers := []string{"Material", "Carbon", "LIS", "RIS", "CPI", "Price"}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(tableColumnWidths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, m := range materials {
		cells := []string{
			m.Name,
			format.FormatCarbon(m.TotalCarbonKg),
			format.FormatScore(m.LIS),
			format.FormatScore(m.RIS),
			PDFCpiString(m),
			format.FormatCurrency(m.CostPerUnit),
		}
		for i, c := range cells {
			pdf.CellFormat(tableColumnWidths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func writeAlternatives(pdf *gofpdf.Fpdf, materials []material.Material) {
	wrote := false
	for _, m := range materials {
		if len(m.Alternatives) == 0 {
			continue
		}
		if !wrote {
			pdf.Ln(6)
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 8, "Better Alternatives", "", 1, "L", false, 0, "")
			wrote = true
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, m.Name, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, alt := range m.Alternatives {
			line := fmt.Sprintf("- %s: %s (CPI %s)", alt.Name, alt.Reason, format.FormatCPI(alt.CPI))
			pdf.MultiCell(0, 5, line, "", "L", false)
		}
	}
}
