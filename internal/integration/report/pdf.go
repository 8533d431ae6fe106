package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// Column widths in mm; they add up to the printable A4 width with 10mm margins.
var pdfWidths = []float64{52, 30, 22, 22, 12, 30, 22}

const rowHeight = 6.0

// ToPDF renders rows into an A4 document: a title, then a shaded header and one line per payment.
func (e *exporter) ToPDF(rows []*entity.PaymentWithCategory, title string) ([]byte, error) {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 10)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(rows) == 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, rowHeight, tr(emptyMessage), "", 1, "L", false, 0, "")
		return output(pdf)
	}

	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(211, 211, 211)
		for i, col := range columns {
			pdf.CellFormat(pdfWidths[i], rowHeight+1, tr(col), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			header()
		}
	})

	header()
	for _, row := range rows {
		for i, cell := range toRecord(row).cells() {
			align := "L"
			if i == 2 {
				align = "R"
			}
			pdf.CellFormat(pdfWidths[i], rowHeight, tr(fit(pdf, cell, pdfWidths[i])), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	return output(pdf)
}

// fit truncates text that would overflow its cell.
func fit(pdf *fpdf.Fpdf, text string, width float64) string {
	limit := width - 2
	if pdf.GetStringWidth(text) <= limit {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
