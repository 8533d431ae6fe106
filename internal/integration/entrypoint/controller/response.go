package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// requireSession returns the authenticated session or answers 401.
func requireSession(ctx *gin.Context) (entity.Session, bool) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return entity.Session{}, false
	}
	return session, true
}

// badRequest answers 400 with the given code.
func badRequest(ctx *gin.Context, message, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// parseIDParam parses the :id path parameter.
func parseIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid id format", "")
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps domain errors to HTTP responses.
func respondError(ctx *gin.Context, err error) {
	code, ok := domainerror.CodeOf(err)
	if !ok {
		slog.Error("request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(statusForCode(code, err), dto.ErrorResponse{
		Error: domainerror.MessageOf(err),
		Code:  code,
	})
}

// statusForCode maps error codes to HTTP status codes.
func statusForCode(code string, err error) int {
	switch code {
	case string(domainerror.ErrCodeUsernameExists),
		string(domainerror.ErrCodeCategoryNameExists):
		return http.StatusConflict
	case string(domainerror.ErrCodeRateLimited):
		return http.StatusTooManyRequests
	case string(domainerror.ErrCodeInvalidCredentials),
		string(domainerror.ErrCodeUserNotFound),
		string(domainerror.ErrCodeInvalidToken),
		string(domainerror.ErrCodeExpiredToken),
		string(domainerror.ErrCodeMissingToken),
		string(domainerror.ErrCodeInvalidSecurityAnswer):
		return http.StatusUnauthorized
	case string(domainerror.ErrCodePaymentNotFound),
		string(domainerror.ErrCodeCategoryNotFound):
		return http.StatusNotFound
	}
	if domainerror.IsValidation(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
