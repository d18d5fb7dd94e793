package transaction

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/integration/persistence/persistencetest"
)

// ledgerFixture wires the transaction use cases to a private in-memory store.
type ledgerFixture struct {
	t            *testing.T
	db           *gorm.DB
	uow          adapter.UnitOfWork
	accounts     adapter.AccountRepository
	categories   adapter.CategoryRepository
	transactions adapter.TransactionRepository

	create *CreateTransactionUseCase
	update *UpdateTransactionUseCase
	remove *DeleteTransactionUseCase
	get    *GetTransactionUseCase
	list   *ListTransactionsUseCase
	audit  *AuditLedgerUseCase
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	db := persistencetest.OpenDB(t)

	uow := persistence.NewUnitOfWork(db)
	transactionRepo := persistence.NewTransactionRepository(db)

	return &ledgerFixture{
		t:            t,
		db:           db,
		uow:          uow,
		accounts:     persistence.NewAccountRepository(db),
		categories:   persistence.NewCategoryRepository(db),
		transactions: transactionRepo,
		create:       NewCreateTransactionUseCase(uow),
		update:       NewUpdateTransactionUseCase(uow),
		remove:       NewDeleteTransactionUseCase(uow),
		get:          NewGetTransactionUseCase(transactionRepo),
		list:         NewListTransactionsUseCase(transactionRepo),
		audit:        NewAuditLedgerUseCase(uow),
	}
}

func (f *ledgerFixture) account(name string) int64 {
	f.t.Helper()
	account := entity.NewAccount(name, entity.AccountTypeExpense, 0)
	if err := f.accounts.Create(context.Background(), account); err != nil {
		f.t.Fatalf("failed to create account: %v", err)
	}
	return account.ID
}

func (f *ledgerFixture) category(name string, categoryType entity.CategoryType) int64 {
	f.t.Helper()
	category := entity.NewCategory(name, categoryType)
	if err := f.categories.Create(context.Background(), category); err != nil {
		f.t.Fatalf("failed to create category: %v", err)
	}
	return category.ID
}

func (f *ledgerFixture) balance(accountID int64) int64 {
	f.t.Helper()
	account, err := f.accounts.FindByID(context.Background(), accountID)
	if err != nil {
		f.t.Fatalf("failed to read account %d: %v", accountID, err)
	}
	return account.Amount
}

func (f *ledgerFixture) mustCreate(input CreateTransactionInput) *TransactionOutput {
	f.t.Helper()
	if input.Date.IsZero() {
		input.Date = testDate
	}
	output, err := f.create.Execute(context.Background(), input)
	if err != nil {
		f.t.Fatalf("failed to create transaction: %v", err)
	}
	return output.Transaction
}

// assertConsistent fails the test if any cached balance drifted from history.
func (f *ledgerFixture) assertConsistent() {
	f.t.Helper()
	output, err := f.audit.Execute(context.Background())
	if err != nil {
		f.t.Fatalf("audit failed: %v", err)
	}
	if !output.Consistent() {
		f.t.Fatalf("ledger drifted: %+v", output.Drifts)
	}
}

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func ptr[T any](v T) *T {
	return &v
}
