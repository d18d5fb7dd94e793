// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	AccountID  *int64 // Matches source or destination
	CategoryID *int64
	Type       *entity.TransactionType
	Limit      int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Transaction, error)

	// FindByIDForUpdate retrieves a transaction and locks its row until the
	// surrounding unit of work ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, newest first.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id int64) error

	// ExistsByAccount checks if any transaction references the account as source or destination.
	ExistsByAccount(ctx context.Context, accountID int64) (bool, error)

	// ExistsByCategory checks if any transaction references the category.
	ExistsByCategory(ctx context.Context, categoryID int64) (bool, error)

	// ForEachBatch streams every transaction in ID order in batches of batchSize.
	ForEachBatch(ctx context.Context, batchSize int, fn func(batch []*entity.Transaction) error) error
}
