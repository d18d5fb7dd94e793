// Package account contains account-related use cases, including the balance reader.
package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// UpdateAccountInput represents the input for account update. The balance is
// not updatable; it only moves through transactions.
type UpdateAccountInput struct {
	AccountID int64
	Name      *string
	Type      *entity.AccountType
	Order     *int
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*entity.Account, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := validateName(name); err != nil {
			return nil, err
		}
		account.Name = name
	}

	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, invalidTypeError()
		}
		account.Type = *input.Type
	}

	if input.Order != nil {
		account.Order = *input.Order
	}

	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	// Re-read so the returned balance reflects any concurrent ledger activity.
	return uc.accountRepo.FindByID(ctx, account.ID)
}
