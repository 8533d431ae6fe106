// Package report contains the export use case.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// Format is a downloadable document type.
type Format string

const (
	FormatSpreadsheet Format = "xlsx"
	FormatPDF         Format = "pdf"
)

const (
	contentTypeSpreadsheet = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF         = "application/pdf"
)

// ExportReportInput selects the month and document type to export.
type ExportReportInput struct {
	Session entity.Session
	Month   int
	Year    int
	Format  string
}

// ExportReportOutput is a rendered document ready to be downloaded.
type ExportReportOutput struct {
	FileName    string
	ContentType string
	Content     []byte
	Rows        int
}

// ExportReportUseCase renders a month's payments as a spreadsheet or PDF.
type ExportReportUseCase struct {
	paymentRepo adapter.PaymentRepository
	exporter    adapter.ReportExporter
}

// NewExportReportUseCase creates a new ExportReportUseCase instance.
func NewExportReportUseCase(paymentRepo adapter.PaymentRepository, exporter adapter.ReportExporter) *ExportReportUseCase {
	return &ExportReportUseCase{
		paymentRepo: paymentRepo,
		exporter:    exporter,
	}
}

// Execute lists the period and renders it in the requested format.
func (uc *ExportReportUseCase) Execute(ctx context.Context, input ExportReportInput) (*ExportReportOutput, error) {
	period := entity.NewPeriod(input.Month, input.Year)
	if !period.Valid() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportPeriod,
			"month must be between 1 and 12 and year between 1900 and 9999",
			domainerror.ErrInvalidPeriod,
		)
	}

	format, err := ParseFormat(input.Format)
	if err != nil {
		return nil, err
	}

	rows, err := uc.paymentRepo.ListByPeriod(ctx, input.Session.OwnerID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for export: %w", err)
	}

	output := &ExportReportOutput{
		FileName: FileName(period, format),
		Rows:     len(rows),
	}
	switch format {
	case FormatSpreadsheet:
		output.ContentType = contentTypeSpreadsheet
		output.Content, err = uc.exporter.ToSpreadsheet(rows, fmt.Sprintf("%s_%d", period.MonthName(), period.Year))
	case FormatPDF:
		output.ContentType = contentTypePDF
		output.Content, err = uc.exporter.ToPDF(rows, fmt.Sprintf("Pagamentos - %s/%d", period.MonthName(), period.Year))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render %s report: %w", format, err)
	}

	slog.Info("report exported",
		"user_id", input.Session.OwnerID,
		"format", format,
		"rows", len(rows),
	)
	return output, nil
}

// ParseFormat accepts xlsx or pdf, case-insensitively.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatSpreadsheet:
		return FormatSpreadsheet, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", domainerror.NewReportError(
		domainerror.ErrCodeUnsupportedReportFormat,
		"format must be xlsx or pdf",
		domainerror.ErrUnsupportedReportFormat,
	)
}

// FileName returns the download name, e.g. pagamentos_03_2025.xlsx.
func FileName(period entity.Period, format Format) string {
	return fmt.Sprintf("pagamentos_%02d_%d.%s", period.Month, period.Year, format)
}
