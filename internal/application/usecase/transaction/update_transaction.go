// Package transaction contains transaction-related use cases and the ledger engine.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID        int64
	Type                 *entity.TransactionType
	Amount               *decimal.Decimal
	AccountID            *int64
	DestinationAccountID *int64
	ClearDestination     bool // Ignored when DestinationAccountID is set
	CategoryID           *int64
	Date                 *time.Time
	Note                 *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
	Balances    []AccountBalanceOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	uow adapter.UnitOfWork
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(uow adapter.UnitOfWork) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		uow: uow,
	}
}

// Execute performs the transaction update. The effect set of the stored state
// and of the proposed state are diffed per account and only the difference
// is applied, so any type, account or amount transition is handled alike.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	var output *UpdateTransactionOutput
	err := uc.uow.Do(ctx, func(tx adapter.LedgerTx) error {
		existing, err := tx.Transactions().FindByIDForUpdate(ctx, input.TransactionID)
		if err != nil {
			if errors.Is(err, domainerror.ErrTransactionNotFound) {
				return transactionNotFoundError()
			}
			return fmt.Errorf("failed to find transaction: %w", err)
		}

		updated, amount := mergeUpdate(existing, input)
		if err := validateDetails(updated.Date, updated.Note); err != nil {
			return err
		}

		checked, err := validateMutation(ctx, tx, proposal{
			Type:                 updated.Type,
			Amount:               amount,
			AccountID:            updated.AccountID,
			DestinationAccountID: updated.DestinationAccountID,
			CategoryID:           updated.CategoryID,
			CheckCategoryType:    recheckCategory(existing, updated),
		})
		if err != nil {
			return err
		}
		updated.Amount = checked.Amount

		before := valueobject.TransactionEffects(existing)
		after := valueobject.TransactionEffects(updated)
		if err := applyDiff(ctx, tx.Accounts(), before, after); err != nil {
			return err
		}

		updated.UpdatedAt = time.Now().UTC()
		if err := tx.Transactions().Update(ctx, updated); err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}

		balances, err := readBalances(ctx, tx.Accounts(), valueobject.Touched(before, after))
		if err != nil {
			return err
		}

		output = &UpdateTransactionOutput{
			Transaction: toTransactionOutput(updated),
			Balances:    balances,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Transaction updated",
		"transactionID", output.Transaction.ID,
		"type", output.Transaction.Type,
		"amount", output.Transaction.Amount,
	)

	return output, nil
}

// mergeUpdate applies the provided fields on a copy of existing. The amount is
// returned separately so a new value can be validated before it is stored.
// A transaction that ends up as a non-transfer drops its destination unless
// the input names one explicitly, in which case validation rejects it.
func mergeUpdate(existing *entity.Transaction, input UpdateTransactionInput) (*entity.Transaction, decimal.Decimal) {
	updated := *existing

	if input.Type != nil {
		updated.Type = *input.Type
	}

	amount := decimal.NewFromInt(existing.Amount)
	if input.Amount != nil {
		amount = *input.Amount
	}

	if input.AccountID != nil {
		updated.AccountID = *input.AccountID
	}

	switch {
	case input.DestinationAccountID != nil:
		destination := *input.DestinationAccountID
		updated.DestinationAccountID = &destination
	case input.ClearDestination:
		updated.DestinationAccountID = nil
	case updated.Type != entity.TransactionTypeTransfer:
		updated.DestinationAccountID = nil
	}

	if input.CategoryID != nil {
		updated.CategoryID = *input.CategoryID
	}
	if input.Date != nil {
		updated.Date = *input.Date
	}
	if input.Note != nil {
		updated.Note = *input.Note
	}

	return &updated, amount
}

// recheckCategory reports whether the category type must be validated again:
// the update points at another category or changes the transaction type.
func recheckCategory(existing, updated *entity.Transaction) bool {
	return existing.CategoryID != updated.CategoryID || existing.Type != updated.Type
}

func transactionNotFoundError() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}
