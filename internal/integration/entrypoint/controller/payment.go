package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/payment"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

var missingPaymentFields = string(domainerror.ErrCodeMissingPaymentFields)

// PaymentController handles ledger endpoints.
type PaymentController struct {
	listUseCase         *payment.ListPaymentsUseCase
	addUseCase          *payment.AddPaymentUseCase
	installmentsUseCase *payment.CreateInstallmentsUseCase
	updateUseCase       *payment.UpdatePaymentUseCase
	deleteUseCase       *payment.DeletePaymentUseCase
	setPaidUseCase      *payment.SetPaidUseCase
}

// NewPaymentController creates a new payment controller instance.
func NewPaymentController(
	listUseCase *payment.ListPaymentsUseCase,
	addUseCase *payment.AddPaymentUseCase,
	installmentsUseCase *payment.CreateInstallmentsUseCase,
	updateUseCase *payment.UpdatePaymentUseCase,
	deleteUseCase *payment.DeletePaymentUseCase,
	setPaidUseCase *payment.SetPaidUseCase,
) *PaymentController {
	return &PaymentController{
		listUseCase:         listUseCase,
		addUseCase:          addUseCase,
		installmentsUseCase: installmentsUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		setPaidUseCase:      setPaidUseCase,
	}
}

// List handles GET /payments requests.
func (c *PaymentController) List(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	var query dto.PeriodQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, "month and year are required", string(domainerror.ErrCodeInvalidPeriod))
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), payment.ListPaymentsInput{
		Session: session,
		Month:   query.Month,
		Year:    query.Year,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PaymentListResponse{
		Data: dto.ToPaymentResponses(output.Payments),
	})
}

// Create handles POST /payments requests.
func (c *PaymentController) Create(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	var req dto.CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", missingPaymentFields)
		return
	}
	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		badRequest(ctx, "due_date must be YYYY-MM-DD", string(domainerror.ErrCodeInvalidDueDate))
		return
	}
	categoryID, err := dto.ParseOptionalID(req.CategoryID)
	if err != nil {
		badRequest(ctx, "Invalid category_id format", missingPaymentFields)
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), payment.AddPaymentInput{
		Session:     session,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     dueDate,
		Month:       req.Month,
		Year:        req.Year,
		CategoryID:  categoryID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{ID: output.ID.String()})
}

// CreateInstallments handles POST /payments/installments requests.
func (c *PaymentController) CreateInstallments(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	var req dto.CreateInstallmentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", missingPaymentFields)
		return
	}
	categoryID, err := dto.ParseOptionalID(req.CategoryID)
	if err != nil {
		badRequest(ctx, "Invalid category_id format", missingPaymentFields)
		return
	}

	output, err := c.installmentsUseCase.Execute(ctx.Request.Context(), payment.CreateInstallmentsInput{
		Session:     session,
		Description: req.Description,
		Total:       req.Total,
		Count:       req.Count,
		StartMonth:  req.StartMonth,
		StartYear:   req.StartYear,
		CategoryID:  categoryID,
		DueDay:      req.DueDay,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.InstallmentsResponse{
		GroupID: output.GroupID.String(),
		Data:    dto.ToPaymentResponses(output.Payments),
	})
}

// Update handles PUT /payments/:id requests.
func (c *PaymentController) Update(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", missingPaymentFields)
		return
	}
	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		badRequest(ctx, "due_date must be YYYY-MM-DD", string(domainerror.ErrCodeInvalidDueDate))
		return
	}
	categoryID, err := dto.ParseOptionalID(req.CategoryID)
	if err != nil {
		badRequest(ctx, "Invalid category_id format", missingPaymentFields)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), payment.UpdatePaymentInput{
		Session:     session,
		PaymentID:   id,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     dueDate,
		CategoryID:  categoryID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !output.Updated {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Payment updated"})
}

// Delete handles DELETE /payments/:id requests.
func (c *PaymentController) Delete(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), payment.DeletePaymentInput{
		Session:   session,
		PaymentID: id,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SetPaid handles PATCH /payments/:id/paid requests.
func (c *PaymentController) SetPaid(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.SetPaidRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "paid is required", missingPaymentFields)
		return
	}

	output, err := c.setPaidUseCase.Execute(ctx.Request.Context(), payment.SetPaidInput{
		Session:   session,
		PaymentID: id,
		Paid:      *req.Paid,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ChangedResponse{Changed: output.Changed})
}
