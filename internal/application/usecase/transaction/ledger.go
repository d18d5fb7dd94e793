// Package transaction contains transaction-related use cases and the ledger engine.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// applyDiff moves cached balances from reflecting prev to reflecting next.
// It must run inside a unit of work: a failure part way through relies on the
// surrounding rollback to undo the deltas already applied.
func applyDiff(ctx context.Context, accounts adapter.AccountRepository, prev, next valueobject.EffectSet) error {
	for _, effect := range valueobject.Diff(prev, next) {
		if err := accounts.AdjustBalance(ctx, effect.AccountID, effect.Delta); err != nil {
			if errors.Is(err, domainerror.ErrAccountNotFound) {
				return domainerror.NewTransactionError(
					domainerror.ErrCodeTxnAccountNotFound,
					fmt.Sprintf("account %d no longer exists", effect.AccountID),
					domainerror.ErrAccountNotFoundForTransaction,
				)
			}
			return fmt.Errorf("failed to adjust balance of account %d: %w", effect.AccountID, err)
		}
	}
	return nil
}

// readBalances loads the post-mutation balances of the given accounts.
func readBalances(ctx context.Context, accounts adapter.AccountRepository, ids []int64) ([]AccountBalanceOutput, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := accounts.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to read balances: %w", err)
	}

	balances := make([]AccountBalanceOutput, len(found))
	for i, account := range found {
		balances[i] = AccountBalanceOutput{
			AccountID: account.ID,
			Amount:    account.Amount,
		}
	}
	return balances, nil
}
