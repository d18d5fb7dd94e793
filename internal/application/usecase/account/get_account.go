// Package account contains account-related use cases, including the balance reader.
package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// GetAccountUseCase handles retrieval of a single account.
type GetAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewGetAccountUseCase creates a new GetAccountUseCase instance.
func NewGetAccountUseCase(accountRepo adapter.AccountRepository) *GetAccountUseCase {
	return &GetAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute returns the account with the given ID.
func (uc *GetAccountUseCase) Execute(ctx context.Context, id int64) (*entity.Account, error) {
	account, err := uc.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return account, nil
}
