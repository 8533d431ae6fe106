package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/invoice"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// InvoiceController settles a month's credit card invoice in bulk.
type InvoiceController struct {
	markPaidUseCase   *invoice.SettleInvoiceUseCase
	unmarkPaidUseCase *invoice.SettleInvoiceUseCase
}

// NewInvoiceController creates a new invoice controller instance.
func NewInvoiceController(markPaidUseCase, unmarkPaidUseCase *invoice.SettleInvoiceUseCase) *InvoiceController {
	return &InvoiceController{
		markPaidUseCase:   markPaidUseCase,
		unmarkPaidUseCase: unmarkPaidUseCase,
	}
}

// Pay handles POST /credit-invoices/pay requests.
func (c *InvoiceController) Pay(ctx *gin.Context) {
	c.settle(ctx, c.markPaidUseCase)
}

// Unpay handles POST /credit-invoices/unpay requests.
func (c *InvoiceController) Unpay(ctx *gin.Context) {
	c.settle(ctx, c.unmarkPaidUseCase)
}

func (c *InvoiceController) settle(ctx *gin.Context, uc *invoice.SettleInvoiceUseCase) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	var req dto.PeriodQuery
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "month and year are required", string(domainerror.ErrCodeInvalidPeriod))
		return
	}

	output, err := uc.Execute(ctx.Request.Context(), invoice.SettleInvoiceInput{
		Session: session,
		Month:   req.Month,
		Year:    req.Year,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ChangedResponse{Changed: output.Changed})
}
