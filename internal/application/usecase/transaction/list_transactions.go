// Package transaction contains transaction-related use cases and the ledger engine.
package transaction

import (
	"context"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

const (
	// DefaultListLimit is the number of transactions returned when no limit is given.
	DefaultListLimit = 100
	// MaxListLimit caps the number of transactions returned by one call.
	MaxListLimit = 500
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	AccountID  *int64
	CategoryID *int64
	Type       *entity.TransactionType
	Limit      int
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// ListTransactionsUseCase handles listing transactions.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute lists transactions, newest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Type != nil && !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense', 'income' or 'transfer'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		AccountID:  input.AccountID,
		CategoryID: input.CategoryID,
		Type:       input.Type,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, len(transactions)),
	}
	for i, txn := range transactions {
		output.Transactions[i] = toTransactionOutput(txn)
	}
	return output, nil
}
