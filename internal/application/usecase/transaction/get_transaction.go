// Package transaction contains transaction-related use cases and the ledger engine.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// GetTransactionUseCase handles retrieval of a single transaction.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns the transaction with the given ID.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, id int64) (*TransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, transactionNotFoundError()
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return toTransactionOutput(transaction), nil
}
