// Package account contains account-related use cases, including the balance reader.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeleteAccountUseCase handles account deletion logic.
type DeleteAccountUseCase struct {
	uow adapter.UnitOfWork
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(uow adapter.UnitOfWork) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		uow: uow,
	}
}

// Execute deletes the account. Deletion is rejected while any transaction
// references the account as source or destination.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, id int64) error {
	err := uc.uow.Do(ctx, func(tx adapter.LedgerTx) error {
		if _, err := tx.Accounts().FindByID(ctx, id); err != nil {
			if errors.Is(err, domainerror.ErrAccountNotFound) {
				return notFoundError()
			}
			return fmt.Errorf("failed to find account: %w", err)
		}

		inUse, err := tx.Transactions().ExistsByAccount(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check account usage: %w", err)
		}
		if inUse {
			return domainerror.NewAccountError(
				domainerror.ErrCodeAccountInUse,
				"account is referenced by transactions",
				domainerror.ErrAccountInUse,
			)
		}

		if err := tx.Accounts().Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Account deleted", "accountID", id)
	return nil
}
