package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/dashboard"
	"github.com/finance-tracker/ledger/internal/application/usecase/report"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// DashboardController handles month summary, breakdown and export endpoints.
type DashboardController struct {
	summaryUseCase   *dashboard.GetMonthSummaryUseCase
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase
	exportUseCase    *report.ExportReportUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetMonthSummaryUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
	exportUseCase *report.ExportReportUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:   summaryUseCase,
		breakdownUseCase: breakdownUseCase,
		exportUseCase:    exportUseCase,
	}
}

// Summary handles GET /reports/summary requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	var query dto.PeriodQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, "month and year are required", string(domainerror.ErrCodeInvalidPeriod))
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthSummaryInput{
		Session: session,
		Month:   query.Month,
		Year:    query.Year,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthSummaryResponse(output))
}

// CategoryBreakdown handles GET /reports/categories requests.
func (c *DashboardController) CategoryBreakdown(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	var query dto.PeriodQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, "month and year are required", string(domainerror.ErrCodeInvalidPeriod))
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), dashboard.GetCategoryBreakdownInput{
		Session: session,
		Month:   query.Month,
		Year:    query.Year,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// Export handles GET /reports/export requests and streams the document as an attachment.
func (c *DashboardController) Export(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	var query dto.ExportQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, "month, year and format are required", string(domainerror.ErrCodeInvalidReportPeriod))
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), report.ExportReportInput{
		Session: session,
		Month:   query.Month,
		Year:    query.Year,
		Format:  query.Format,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.FileName+`"`)
	ctx.Header("X-Report-Rows", strconv.Itoa(output.Rows))
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}
