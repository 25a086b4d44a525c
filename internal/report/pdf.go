package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gotbb/internal/bearing"
)

// PDFMeta is printed in the report header
type PDFMeta struct {
	Title   string
	Project string
	Author  string
	Date    time.Time
}

var pdfColumns = []struct {
	title string
	width float64
	align string
}{
	{"Node", 40, "L"},
	{"Beam", 14, "C"},
	{"Case", 24, "C"},
	{"Width (in)", 24, "R"},
	{"Length (in)", 24, "R"},
	{"Area (sq in)", 26, "R"},
	{"Capacity (lbs)", 32, "R"},
	{"Demand (lbs)", 32, "R"},
	{"Ratio", 28, "R"},
	{"Status", 20, "C"},
}

// WritePDF writes a tabular bearing report with one row per check
func WritePDF(w io.Writer, reports []bearing.Report, meta PDFMeta) error {
	pdf := buildPDF(reports, meta)
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}

// buildPDF lays out the report. Text passes through the cp1252 translator
// of the core fonts so names with accents print correctly.
func buildPDF(reports []bearing.Report, meta PDFMeta) *gofpdf.Fpdf {
	if meta.Title == "" {
		meta.Title = "Timber Beam Bearing Check"
	}
	if meta.Date.IsZero() {
		meta.Date = time.Now()
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(meta.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if meta.Project != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", meta.Project)))
		pdf.Ln(6)
	}
	if meta.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", meta.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Date.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Non-fire demand: 1.2D + 1.6L. Fire demand: D + L.")
	pdf.Ln(10)

	writePDFHeader(pdf)

	pdf.SetFont("Helvetica", "", 9)
	for i, r := range reports {
		label := tr(r.Node.Label(i))
		fireLabel := FireLabel(r.Node.CharDepth)

		for _, c := range r.Checks {
			caseLabel := "Non-fire"
			if c.Case == bearing.Fire {
				caseLabel = fireLabel
			}
			cells := []string{
				label,
				fmt.Sprintf("%d", c.Beam),
				caseLabel,
				formatRounded(c.Result.EffectiveWidth, 3),
				formatRounded(c.Result.EffectiveLength, 3),
				formatRounded(c.Result.Area(), 3),
				formatNumber(c.Capacity),
				formatNumber(c.Demand),
				formatRatio(c.Ratio),
				string(c.Status),
			}
			if c.Status == bearing.Fail {
				pdf.SetTextColor(180, 0, 0)
			}
			for j, col := range pdfColumns {
				pdf.CellFormat(col.width, 6, cells[j], "1", 0, col.align, false, 0, "")
			}
			pdf.SetTextColor(0, 0, 0)
			pdf.Ln(-1)
		}
	}

	var warnings []string
	for i, r := range reports {
		for _, warning := range r.Warnings {
			warnings = append(warnings, fmt.Sprintf("%s: %s", r.Node.Label(i), warning))
		}
	}
	if len(warnings) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 6, "Warnings")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 9)
		for _, warning := range warnings {
			pdf.MultiCell(0, 5, tr(warning), "", "L", false)
		}
	}

	return pdf
}

func writePDFHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}
