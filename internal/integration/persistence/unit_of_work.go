// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// unitOfWork implements the adapter.UnitOfWork interface on gorm transactions.
type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new unit of work instance.
func NewUnitOfWork(db *gorm.DB) adapter.UnitOfWork {
	return &unitOfWork{
		db: db,
	}
}

// Do runs fn inside a database transaction. Returning an error from fn, or
// panicking, rolls back every write made through tx.
func (u *unitOfWork) Do(ctx context.Context, fn func(tx adapter.LedgerTx) error) error {
	return u.db.WithContext(ctx).Transaction(func(gormTx *gorm.DB) error {
		return fn(&ledgerTx{
			accounts:     NewAccountRepository(gormTx),
			categories:   NewCategoryRepository(gormTx),
			transactions: NewTransactionRepository(gormTx),
		})
	})
}

// ledgerTx holds repositories bound to one gorm transaction.
type ledgerTx struct {
	accounts     adapter.AccountRepository
	categories   adapter.CategoryRepository
	transactions adapter.TransactionRepository
}

func (t *ledgerTx) Accounts() adapter.AccountRepository { return t.accounts }
func (t *ledgerTx) Categories() adapter.CategoryRepository { return t.categories }
func (t *ledgerTx) Transactions() adapter.TransactionRepository { return t.transactions }
