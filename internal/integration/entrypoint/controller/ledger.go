// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/account"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// LedgerController serves cached balances and the ledger audit.
type LedgerController struct {
	balanceReader *account.BalanceReader
	auditUseCase  *transaction.AuditLedgerUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	balanceReader *account.BalanceReader,
	auditUseCase *transaction.AuditLedgerUseCase,
) *LedgerController {
	return &LedgerController{
		balanceReader: balanceReader,
		auditUseCase:  auditUseCase,
	}
}

// Balance handles GET /accounts/:id/balance requests.
func (c *LedgerController) Balance(ctx *gin.Context) {
	accountID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	output, err := c.balanceReader.Balance(ctx.Request.Context(), accountID)
	if err != nil {
		var accErr *domainerror.AccountError
		if errors.As(err, &accErr) {
			ctx.JSON(statusForKind(accErr.Code.Kind()), dto.ErrorResponse{
				Error: accErr.Message,
				Code:  string(accErr.Code),
			})
			return
		}
		respondInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceResponse(output))
}

// Balances handles GET /balances requests.
func (c *LedgerController) Balances(ctx *gin.Context) {
	output, err := c.balanceReader.Balances(ctx.Request.Context())
	if err != nil {
		respondInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalancesResponse(output))
}

// Audit handles GET /ledger/audit requests. Drift is reported in the body with
// the integrity error code; the request itself still succeeds.
func (c *LedgerController) Audit(ctx *gin.Context) {
	output, err := c.auditUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondInternalError(ctx, err)
		return
	}

	code := ""
	var txnErr *domainerror.TransactionError
	if errors.As(output.Err(), &txnErr) {
		code = string(txnErr.Code)
	}

	ctx.JSON(http.StatusOK, dto.ToAuditResponse(output, code))
}
