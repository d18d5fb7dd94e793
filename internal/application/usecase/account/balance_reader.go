// Package account contains account-related use cases, including the balance reader.
package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// BalanceOutput is the current cached balance of one account.
type BalanceOutput struct {
	AccountID int64
	Name      string
	Amount    int64
}

// BalancesOutput lists every account balance plus their sum.
type BalancesOutput struct {
	Balances []BalanceOutput
	Total    int64
}

// BalanceReader exposes the cached account balances maintained by the ledger.
// It never sums transaction history; reads cost one row lookup per account.
type BalanceReader struct {
	accountRepo adapter.AccountRepository
}

// NewBalanceReader creates a new BalanceReader instance.
func NewBalanceReader(accountRepo adapter.AccountRepository) *BalanceReader {
	return &BalanceReader{
		accountRepo: accountRepo,
	}
}

// Balance returns the current balance of the given account.
func (r *BalanceReader) Balance(ctx context.Context, accountID int64) (*BalanceOutput, error) {
	account, err := r.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}

	return &BalanceOutput{
		AccountID: account.ID,
		Name:      account.Name,
		Amount:    account.Amount,
	}, nil
}

// Balances returns the balance of every account.
func (r *BalanceReader) Balances(ctx context.Context) (*BalancesOutput, error) {
	accounts, err := r.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read balances: %w", err)
	}

	output := &BalancesOutput{
		Balances: make([]BalanceOutput, len(accounts)),
	}
	for i, account := range accounts {
		output.Balances[i] = BalanceOutput{
			AccountID: account.ID,
			Name:      account.Name,
			Amount:    account.Amount,
		}
		output.Total += account.Amount
	}
	return output, nil
}
