package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

func sampleRows() []*entity.PaymentWithCategory {
	userID := uuid.New()
	period := entity.NewPeriod(3, 2025)
	category := entity.NewCategory(userID, "Cartão de crédito")

	paid := entity.NewPayment(userID, "Conta de luz", decimal.RequireFromString("123.45"), period.Date(5), period, nil)
	paidAt := time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)
	paid.Paid = true
	paid.PaidAt = &paidAt

	installment := entity.NewInstallment(userID, uuid.New(), "Geladeira (2/10)", decimal.RequireFromString("350.00"),
		period.Date(10), period, &category.ID, 2, 10)

	return []*entity.PaymentWithCategory{
		{Payment: paid},
		{Payment: installment, Category: category},
	}
}

func TestToSpreadsheet(t *testing.T) {
	data, err := NewExporter().ToSpreadsheet(sampleRows(), "Março_2025")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Março_2025"}, f.GetSheetList())

	rows, err := f.GetRows("Março_2025")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, columns, rows[0])

	assert.Equal(t, "Conta de luz", rows[1][0])
	assert.Equal(t, "Sim", rows[1][4])
	assert.Equal(t, "2025-03-04", rows[1][5])

	assert.Equal(t, "Cartão de crédito", rows[2][1])
	assert.Equal(t, "Não", rows[2][4])
	assert.Equal(t, "2/10", rows[2][6])

	raw, err := f.GetCellValue("Março_2025", "C2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "123.45", raw, "amounts are numeric cells")
}

func TestToSpreadsheetEmptyUsesDefaultSheet(t *testing.T) {
	data, err := NewExporter().ToSpreadsheet(nil, "  ")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{DefaultTitle}, f.GetSheetList())
	rows, err := f.GetRows(DefaultTitle)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}

func TestSanitizeSheetName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "keeps accents", input: "Março_2025", expected: "Março_2025"},
		{name: "replaces slash", input: "03/2025", expected: "03_2025"},
		{name: "blank falls back", input: "", expected: DefaultTitle},
		{name: "caps length", input: strings.Repeat("a", 40), expected: strings.Repeat("a", 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeSheetName(tt.input))
		})
	}
}

func TestToPDF(t *testing.T) {
	exporter := NewExporter()

	data, err := exporter.ToPDF(sampleRows(), "Pagamentos - Março/2025")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	empty, err := exporter.ToPDF(nil, "")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(empty, []byte("%PDF-")))
}

func TestToPDFManyRowsSpansPages(t *testing.T) {
	base := sampleRows()[0]
	rows := make([]*entity.PaymentWithCategory, 0, 120)
	for i := 0; i < 120; i++ {
		rows = append(rows, base)
	}

	data, err := NewExporter().ToPDF(rows, "Pagamentos")
	require.NoError(t, err)
	assert.Greater(t, bytes.Count(data, []byte("/Type /Page\n")), 1)
}
