// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// FindByIDs retrieves the accounts with the given IDs, ordered by ID.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Account, error)

	// FindAll retrieves all accounts ordered by display order.
	FindAll(ctx context.Context) ([]*entity.Account, error)

	// Update persists name, type and order. The cached balance is never written here.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account from the database.
	Delete(ctx context.Context, id int64) error

	// AdjustBalance adds delta to the account's cached balance in a single
	// read-modify-write statement. Returns ErrAccountNotFound if the row is gone.
	AdjustBalance(ctx context.Context, id int64, delta int64) error
}
