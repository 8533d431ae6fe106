package adapter

import "github.com/finance-tracker/ledger/internal/domain/entity"

// ReportExporter renders already-queried payments into downloadable documents.
type ReportExporter interface {
	// ToSpreadsheet renders rows into an xlsx workbook with a single sheet.
	ToSpreadsheet(rows []*entity.PaymentWithCategory, sheetName string) ([]byte, error)

	// ToPDF renders rows into a titled PDF table.
	ToPDF(rows []*entity.PaymentWithCategory, title string) ([]byte, error)
}
