// Package transaction contains transaction-related use cases and the ledger engine.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Balances []AccountBalanceOutput
}

// DeleteTransactionUseCase reverses a transaction's effects and removes it.
type DeleteTransactionUseCase struct {
	uow adapter.UnitOfWork
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(uow adapter.UnitOfWork) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		uow: uow,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, transactionID int64) (*DeleteTransactionOutput, error) {
	var output *DeleteTransactionOutput
	err := uc.uow.Do(ctx, func(tx adapter.LedgerTx) error {
		existing, err := tx.Transactions().FindByIDForUpdate(ctx, transactionID)
		if err != nil {
			if errors.Is(err, domainerror.ErrTransactionNotFound) {
				return transactionNotFoundError()
			}
			return fmt.Errorf("failed to find transaction: %w", err)
		}

		effects := valueobject.TransactionEffects(existing)
		if err := applyDiff(ctx, tx.Accounts(), effects, nil); err != nil {
			return err
		}

		if err := tx.Transactions().Delete(ctx, existing.ID); err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}

		balances, err := readBalances(ctx, tx.Accounts(), effects.AccountIDs())
		if err != nil {
			return err
		}

		output = &DeleteTransactionOutput{Balances: balances}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Transaction deleted", "transactionID", transactionID)
	return output, nil
}
