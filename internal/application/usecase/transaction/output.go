// Package transaction contains transaction-related use cases and the ledger engine.
package transaction

import (
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// TransactionOutput represents a transaction in use case outputs.
type TransactionOutput struct {
	ID                   int64
	Type                 entity.TransactionType
	Amount               int64
	AccountID            int64
	DestinationAccountID *int64
	CategoryID           int64
	Date                 time.Time
	Note                 string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// AccountBalanceOutput is an account balance observed right after a mutation.
type AccountBalanceOutput struct {
	AccountID int64
	Amount    int64
}

func toTransactionOutput(txn *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:                   txn.ID,
		Type:                 txn.Type,
		Amount:               txn.Amount,
		AccountID:            txn.AccountID,
		DestinationAccountID: txn.DestinationAccountID,
		CategoryID:           txn.CategoryID,
		Date:                 txn.Date,
		Note:                 txn.Note,
		CreatedAt:            txn.CreatedAt,
		UpdatedAt:            txn.UpdatedAt,
	}
}
