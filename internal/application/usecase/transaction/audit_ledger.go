// Package transaction contains transaction-related use cases and the ledger engine.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

const auditBatchSize = 500

// AccountDrift describes an account whose cached balance disagrees with the
// sum of effects of the transactions that reference it.
type AccountDrift struct {
	AccountID int64
	Name      string
	Cached    int64
	Expected  int64
}

// AuditLedgerOutput represents the result of a ledger audit.
type AuditLedgerOutput struct {
	AccountsChecked     int
	TransactionsScanned int
	Drifts              []AccountDrift
}

// Consistent reports whether every cached balance matched.
func (o *AuditLedgerOutput) Consistent() bool {
	return len(o.Drifts) == 0
}

// Err returns a balance integrity error when any drift was found.
func (o *AuditLedgerOutput) Err() error {
	if o.Consistent() {
		return nil
	}
	return domainerror.NewTransactionError(
		domainerror.ErrCodeBalanceIntegrity,
		fmt.Sprintf("%d account balances disagree with transaction history", len(o.Drifts)),
		domainerror.ErrBalanceIntegrity,
	)
}

// AuditLedgerUseCase recomputes every balance from transaction history and
// compares it against the cached value. It is a diagnostic and is never
// used to serve balances.
type AuditLedgerUseCase struct {
	uow adapter.UnitOfWork
}

// NewAuditLedgerUseCase creates a new AuditLedgerUseCase instance.
func NewAuditLedgerUseCase(uow adapter.UnitOfWork) *AuditLedgerUseCase {
	return &AuditLedgerUseCase{
		uow: uow,
	}
}

// Execute performs the audit over a single consistent snapshot.
func (uc *AuditLedgerUseCase) Execute(ctx context.Context) (*AuditLedgerOutput, error) {
	output := &AuditLedgerOutput{}
	err := uc.uow.Do(ctx, func(tx adapter.LedgerTx) error {
		expected := make(map[int64]int64)
		err := tx.Transactions().ForEachBatch(ctx, auditBatchSize, func(batch []*entity.Transaction) error {
			for _, txn := range batch {
				for _, effect := range valueobject.TransactionEffects(txn) {
					expected[effect.AccountID] += effect.Delta
				}
			}
			output.TransactionsScanned += len(batch)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to scan transactions: %w", err)
		}

		accounts, err := tx.Accounts().FindAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to list accounts: %w", err)
		}
		output.AccountsChecked = len(accounts)

		for _, account := range accounts {
			if account.Amount != expected[account.ID] {
				output.Drifts = append(output.Drifts, AccountDrift{
					AccountID: account.ID,
					Name:      account.Name,
					Cached:    account.Amount,
					Expected:  expected[account.ID],
				})
			}
			delete(expected, account.ID)
		}

		// Effects pointing at accounts that no longer exist.
		for id, amount := range expected {
			if amount != 0 {
				output.Drifts = append(output.Drifts, AccountDrift{AccountID: id, Expected: amount})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(output.Drifts, func(i, j int) bool {
		return output.Drifts[i].AccountID < output.Drifts[j].AccountID
	})

	if !output.Consistent() {
		slog.Warn("Ledger audit found balance drift",
			"accounts", output.AccountsChecked,
			"transactions", output.TransactionsScanned,
			"drifted", len(output.Drifts),
		)
	}

	return output, nil
}
