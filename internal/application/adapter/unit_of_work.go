// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// LedgerTx exposes repositories bound to a single storage transaction.
type LedgerTx interface {
	Accounts() AccountRepository
	Categories() CategoryRepository
	Transactions() TransactionRepository
}

// UnitOfWork runs a function atomically against the store. If fn returns an
// error every write made through the LedgerTx is rolled back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(tx LedgerTx) error) error
}
