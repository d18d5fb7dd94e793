// Package transaction contains transaction-related use cases and the ledger engine.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

const (
	// MaxNoteLength is the maximum allowed length for transaction notes.
	MaxNoteLength = 1000
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Type                 entity.TransactionType
	Amount               decimal.Decimal
	AccountID            int64
	DestinationAccountID *int64
	CategoryID           int64
	Date                 time.Time
	Note                 string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
	Balances    []AccountBalanceOutput
}

// CreateTransactionUseCase validates a new transaction, applies its effects
// to the touched accounts and persists it, all in one unit of work.
type CreateTransactionUseCase struct {
	uow adapter.UnitOfWork
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(uow adapter.UnitOfWork) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		uow: uow,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateDetails(input.Date, input.Note); err != nil {
		return nil, err
	}

	var output *CreateTransactionOutput
	err := uc.uow.Do(ctx, func(tx adapter.LedgerTx) error {
		checked, err := validateMutation(ctx, tx, proposal{
			Type:                 input.Type,
			Amount:               input.Amount,
			AccountID:            input.AccountID,
			DestinationAccountID: input.DestinationAccountID,
			CategoryID:           input.CategoryID,
			CheckCategoryType:    true,
		})
		if err != nil {
			return err
		}

		transaction := entity.NewTransaction(
			input.Type,
			checked.Amount,
			input.AccountID,
			input.DestinationAccountID,
			input.CategoryID,
			input.Date,
			input.Note,
		)

		effects := valueobject.TransactionEffects(transaction)
		if err := applyDiff(ctx, tx.Accounts(), nil, effects); err != nil {
			return err
		}

		if err := tx.Transactions().Create(ctx, transaction); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		balances, err := readBalances(ctx, tx.Accounts(), effects.AccountIDs())
		if err != nil {
			return err
		}

		output = &CreateTransactionOutput{
			Transaction: toTransactionOutput(transaction),
			Balances:    balances,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Transaction created",
		"transactionID", output.Transaction.ID,
		"type", output.Transaction.Type,
		"amount", output.Transaction.Amount,
		"accountID", output.Transaction.AccountID,
	)

	return output, nil
}

// validateDetails checks the fields that never affect balances.
func validateDetails(date time.Time, note string) error {
	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	if len(note) > MaxNoteLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNoteTooLong,
			fmt.Sprintf("note must not exceed %d characters", MaxNoteLength),
			domainerror.ErrNoteTooLong,
		)
	}
	return nil
}
