// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-tracker/ledger/internal/application/usecase/account"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
)

// BalanceResponse is the cached balance of one account.
type BalanceResponse struct {
	AccountID int64  `json:"account_id"`
	Name      string `json:"name"`
	Amount    int64  `json:"amount"`
}

// BalancesResponse lists every account balance plus their sum.
type BalancesResponse struct {
	Balances []BalanceResponse `json:"balances"`
	Total    int64             `json:"total"`
}

// AccountDriftResponse describes one account whose cached balance drifted.
type AccountDriftResponse struct {
	AccountID int64  `json:"account_id"`
	Name      string `json:"name,omitempty"`
	Cached    int64  `json:"cached"`
	Expected  int64  `json:"expected"`
}

// AuditResponse represents the result of a ledger audit.
type AuditResponse struct {
	Consistent          bool                   `json:"consistent"`
	AccountsChecked     int                    `json:"accounts_checked"`
	TransactionsScanned int                    `json:"transactions_scanned"`
	Drifts              []AccountDriftResponse `json:"drifts"`
	Code                string                 `json:"code,omitempty"`
}

// ToBalanceResponse converts a BalanceOutput to a BalanceResponse DTO.
func ToBalanceResponse(output *account.BalanceOutput) BalanceResponse {
	return BalanceResponse{
		AccountID: output.AccountID,
		Name:      output.Name,
		Amount:    output.Amount,
	}
}

// ToBalancesResponse converts a BalancesOutput to a BalancesResponse DTO.
func ToBalancesResponse(output *account.BalancesOutput) BalancesResponse {
	response := BalancesResponse{
		Balances: make([]BalanceResponse, len(output.Balances)),
		Total:    output.Total,
	}
	for i := range output.Balances {
		response.Balances[i] = ToBalanceResponse(&output.Balances[i])
	}
	return response
}

// ToAuditResponse converts an AuditLedgerOutput to an AuditResponse DTO.
func ToAuditResponse(output *transaction.AuditLedgerOutput, code string) AuditResponse {
	response := AuditResponse{
		Consistent:          output.Consistent(),
		AccountsChecked:     output.AccountsChecked,
		TransactionsScanned: output.TransactionsScanned,
		Drifts:              make([]AccountDriftResponse, len(output.Drifts)),
		Code:                code,
	}
	for i, d := range output.Drifts {
		response.Drifts[i] = AccountDriftResponse{
			AccountID: d.AccountID,
			Name:      d.Name,
			Cached:    d.Cached,
			Expected:  d.Expected,
		}
	}
	return response
}
