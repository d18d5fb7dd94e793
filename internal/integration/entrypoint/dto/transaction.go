// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
)

// DateLayout is the wire format of transaction dates.
const DateLayout = "2006-01-02"

// CreateTransactionRequest represents the request body for transaction creation.
// Amount is parsed as an exact decimal so fractional values can be rejected
// instead of silently truncated.
type CreateTransactionRequest struct {
	Type                 string           `json:"type" binding:"required"`
	Amount               *decimal.Decimal `json:"amount" binding:"required"`
	AccountID            int64            `json:"account_id" binding:"required"`
	DestinationAccountID *int64           `json:"destination_account_id,omitempty"`
	CategoryID           int64            `json:"category_id" binding:"required"`
	Date                 string           `json:"date" binding:"required"`
	Note                 string           `json:"note,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Type                 *string          `json:"type,omitempty"`
	Amount               *decimal.Decimal `json:"amount,omitempty"`
	AccountID            *int64           `json:"account_id,omitempty"`
	DestinationAccountID *int64           `json:"destination_account_id,omitempty"`
	ClearDestination     bool             `json:"clear_destination,omitempty"`
	CategoryID           *int64           `json:"category_id,omitempty"`
	Date                 *string          `json:"date,omitempty"`
	Note                 *string          `json:"note,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID                   int64     `json:"id"`
	Type                 string    `json:"type"`
	Amount               int64     `json:"amount"`
	AccountID            int64     `json:"account_id"`
	DestinationAccountID *int64    `json:"destination_account_id,omitempty"`
	CategoryID           int64     `json:"category_id"`
	Date                 string    `json:"date"`
	Note                 string    `json:"note,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// AccountBalanceResponse is an account balance observed right after a mutation.
type AccountBalanceResponse struct {
	AccountID int64 `json:"account_id"`
	Amount    int64 `json:"amount"`
}

// TransactionMutationResponse is returned by create and update.
type TransactionMutationResponse struct {
	Transaction TransactionResponse      `json:"transaction"`
	Balances    []AccountBalanceResponse `json:"balances"`
}

// TransactionDeleteResponse is returned by delete.
type TransactionDeleteResponse struct {
	Balances []AccountBalanceResponse `json:"balances"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(output *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:                   output.ID,
		Type:                 string(output.Type),
		Amount:               output.Amount,
		AccountID:            output.AccountID,
		DestinationAccountID: output.DestinationAccountID,
		CategoryID:           output.CategoryID,
		Date:                 output.Date.Format(DateLayout),
		Note:                 output.Note,
		CreatedAt:            output.CreatedAt,
		UpdatedAt:            output.UpdatedAt,
	}
}

// ToAccountBalanceResponses converts post-mutation balances to DTOs.
func ToAccountBalanceResponses(balances []transaction.AccountBalanceOutput) []AccountBalanceResponse {
	response := make([]AccountBalanceResponse, len(balances))
	for i, b := range balances {
		response[i] = AccountBalanceResponse{
			AccountID: b.AccountID,
			Amount:    b.Amount,
		}
	}
	return response
}

// ToTransactionListResponse converts a list output to a TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	response := TransactionListResponse{
		Transactions: make([]TransactionResponse, len(output.Transactions)),
	}
	for i, txn := range output.Transactions {
		response.Transactions[i] = ToTransactionResponse(txn)
	}
	return response
}
