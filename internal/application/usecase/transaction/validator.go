// Package transaction contains transaction-related use cases and the ledger engine.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// proposal is the balance-relevant state a mutation wants to persist.
type proposal struct {
	Type                 entity.TransactionType
	Amount               decimal.Decimal
	AccountID            int64
	DestinationAccountID *int64
	CategoryID           int64

	// CheckCategoryType is set when the transaction newly references its
	// category or changes type against it.
	CheckCategoryType bool
}

// validated carries the values resolved while validating a proposal.
type validated struct {
	Amount   int64
	Category *entity.Category
}

// validateMutation rejects a proposal that references missing entities or is
// structurally invalid. It reads through tx so the checks observe the same
// snapshot the mutation is applied to, and it never writes.
//
// The category type check runs only when CheckCategoryType is set: a category
// whose type changes later never invalidates transactions that already use it.
func validateMutation(ctx context.Context, tx adapter.LedgerTx, p proposal) (*validated, error) {
	if !p.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense', 'income' or 'transfer'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if err := accountExists(ctx, tx, p.AccountID); err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnAccountNotFound,
				fmt.Sprintf("account %d not found", p.AccountID),
				domainerror.ErrAccountNotFoundForTransaction,
			)
		}
		return nil, err
	}

	if p.Type == entity.TransactionTypeTransfer {
		if p.DestinationAccountID == nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeDestinationRequired,
				"transfer requires a destination account",
				domainerror.ErrDestinationRequired,
			)
		}
		if *p.DestinationAccountID == p.AccountID {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeSelfTransfer,
				"cannot transfer to the same account",
				domainerror.ErrSelfTransfer,
			)
		}
		if err := accountExists(ctx, tx, *p.DestinationAccountID); err != nil {
			if errors.Is(err, domainerror.ErrAccountNotFound) {
				return nil, domainerror.NewTransactionError(
					domainerror.ErrCodeTxnDestinationAccountNotFound,
					fmt.Sprintf("destination account %d not found", *p.DestinationAccountID),
					domainerror.ErrDestinationAccountNotFound,
				)
			}
			return nil, err
		}
	} else if p.DestinationAccountID != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDestinationForbidden,
			"only transfers may have a destination account",
			domainerror.ErrDestinationForbidden,
		)
	}

	category, err := tx.Categories().FindByID(ctx, p.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				fmt.Sprintf("category %d not found", p.CategoryID),
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if p.CheckCategoryType && !category.Type.Accepts(p.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTypeMismatch,
			fmt.Sprintf("category of type '%s' cannot be used for '%s' transactions", category.Type, p.Type),
			domainerror.ErrCategoryTypeMismatch,
		)
	}

	amount, ok := entity.AmountFromDecimal(p.Amount)
	if !ok {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be a positive whole number of minor units",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	return &validated{
		Amount:   amount,
		Category: category,
	}, nil
}

func accountExists(ctx context.Context, tx adapter.LedgerTx, id int64) error {
	if _, err := tx.Accounts().FindByID(ctx, id); err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return err
		}
		return fmt.Errorf("failed to find account: %w", err)
	}
	return nil
}
