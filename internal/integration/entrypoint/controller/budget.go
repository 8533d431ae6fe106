package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// BudgetController handles monthly budget endpoints.
type BudgetController struct {
	getUseCase    *budget.GetBudgetUseCase
	upsertUseCase *budget.UpsertBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(getUseCase *budget.GetBudgetUseCase, upsertUseCase *budget.UpsertBudgetUseCase) *BudgetController {
	return &BudgetController{
		getUseCase:    getUseCase,
		upsertUseCase: upsertUseCase,
	}
}

// Get handles GET /budgets requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	var query dto.PeriodQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, "month and year are required", string(domainerror.ErrCodeInvalidBudgetPeriod))
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), budget.GetBudgetInput{
		Session: session,
		Month:   query.Month,
		Year:    query.Year,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output))
}

// Upsert handles PUT /budgets requests.
func (c *BudgetController) Upsert(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	var req dto.UpsertBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingBudgetFields))
		return
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), budget.UpsertBudgetInput{
		Session:     session,
		Month:       req.Month,
		Year:        req.Year,
		Income:      req.Income,
		ExpenseGoal: req.ExpenseGoal,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output))
}
