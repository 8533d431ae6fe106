// Package report renders queried payments into downloadable documents.
package report

import (
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

const (
	// DefaultTitle names the sheet and PDF heading when the caller gives none.
	DefaultTitle = "Pagamentos"

	emptyMessage = "Sem registros no filtro atual."
	dateLayout   = "2006-01-02"
	maxSheetName = 31
)

var columns = []string{"Descrição", "Categoria", "Valor", "Vencimento", "Pago", "Data pagamento", "Parcela"}

// exporter implements the adapter.ReportExporter interface.
type exporter struct{}

// NewExporter creates a report exporter.
func NewExporter() adapter.ReportExporter {
	return &exporter{}
}

// record is one payment flattened into display cells.
type record struct {
	description string
	category    string
	amount      float64
	amountText  string
	dueDate     string
	paid        string
	paidAt      string
	installment string
}

func toRecord(row *entity.PaymentWithCategory) record {
	p := row.Payment
	rec := record{
		description: p.Description,
		category:    row.CategoryName(),
		amount:      p.Amount.InexactFloat64(),
		amountText:  p.Amount.StringFixed(2),
		dueDate:     p.DueDate.Format(dateLayout),
		paid:        "Não",
	}
	if p.Paid {
		rec.paid = "Sim"
	}
	if p.PaidAt != nil {
		rec.paidAt = p.PaidAt.Format(dateLayout)
	}
	if p.IsInstallment {
		rec.installment = fmt.Sprintf("%d/%d", p.InstallmentIndex, p.InstallmentCount)
	}
	return rec
}

func (r record) cells() []string {
	return []string{r.description, r.category, r.amountText, r.dueDate, r.paid, r.paidAt, r.installment}
}
