package account

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/integration/persistence/persistencetest"
)

func TestAccountLifecycle(t *testing.T) {
	db := persistencetest.OpenDB(t)
	ctx := context.Background()

	accountRepo := persistence.NewAccountRepository(db)
	uow := persistence.NewUnitOfWork(db)

	create := NewCreateAccountUseCase(accountRepo)
	get := NewGetAccountUseCase(accountRepo)
	list := NewListAccountsUseCase(accountRepo)
	update := NewUpdateAccountUseCase(accountRepo)
	remove := NewDeleteAccountUseCase(uow)

	savings, err := create.Execute(ctx, CreateAccountInput{Name: "Savings", Type: entity.AccountTypeIncome, Order: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wallet, err := create.Execute(ctx, CreateAccountInput{Name: "  Wallet  ", Type: entity.AccountTypeExpense, Order: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("new accounts start with an empty balance", func(t *testing.T) {
		found, err := get.Execute(ctx, wallet.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Amount != 0 {
			t.Errorf("expected 0, got %d", found.Amount)
		}
		if found.Name != "Wallet" {
			t.Errorf("expected trimmed name, got %q", found.Name)
		}
	})

	t.Run("list follows display order", func(t *testing.T) {
		accounts, err := list.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(accounts) != 2 || accounts[0].ID != wallet.ID || accounts[1].ID != savings.ID {
			t.Errorf("unexpected order: %+v", accounts)
		}
	})

	t.Run("update never writes the balance", func(t *testing.T) {
		if err := accountRepo.AdjustBalance(ctx, wallet.ID, 500); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		name := "Main wallet"
		updated, err := update.Execute(ctx, UpdateAccountInput{AccountID: wallet.ID, Name: &name})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Name != name || updated.Amount != 500 {
			t.Errorf("unexpected account after update: %+v", updated)
		}
	})

	t.Run("delete is rejected while referenced", func(t *testing.T) {
		category := entity.NewCategory("Food", entity.CategoryTypeExpense)
		if err := persistence.NewCategoryRepository(db).Create(ctx, category); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		txn := entity.NewTransaction(entity.TransactionTypeTransfer, 10, savings.ID, &wallet.ID, category.ID, time.Now().UTC(), "")
		if err := persistence.NewTransactionRepository(db).Create(ctx, txn); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := remove.Execute(ctx, wallet.ID)
		if !errors.Is(err, domainerror.ErrAccountInUse) {
			t.Fatalf("expected account in use, got %v", err)
		}
		var accErr *domainerror.AccountError
		if !errors.As(err, &accErr) || accErr.Code.Kind() != domainerror.KindConflict {
			t.Errorf("expected conflict kind, got %v", err)
		}
	})

	t.Run("delete unreferenced account", func(t *testing.T) {
		spare, err := create.Execute(ctx, CreateAccountInput{Name: "Spare", Type: entity.AccountTypeExpense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := remove.Execute(ctx, spare.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := get.Execute(ctx, spare.ID); !errors.Is(err, domainerror.ErrAccountNotFound) {
			t.Errorf("expected not found, got %v", err)
		}
	})
}

func TestCreateAccount_Validation(t *testing.T) {
	db := persistencetest.OpenDB(t)
	create := NewCreateAccountUseCase(persistence.NewAccountRepository(db))

	tests := []struct {
		name    string
		input   CreateAccountInput
		wantErr error
	}{
		{"empty name", CreateAccountInput{Name: "   ", Type: entity.AccountTypeExpense}, domainerror.ErrAccountNameRequired},
		{"name too long", CreateAccountInput{Name: strings.Repeat("a", MaxAccountNameLength+1), Type: entity.AccountTypeExpense}, domainerror.ErrAccountNameTooLong},
		{"invalid type", CreateAccountInput{Name: "Cash", Type: "asset"}, domainerror.ErrInvalidAccountType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := create.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestBalanceReader(t *testing.T) {
	db := persistencetest.OpenDB(t)
	ctx := context.Background()

	accountRepo := persistence.NewAccountRepository(db)
	create := NewCreateAccountUseCase(accountRepo)
	reader := NewBalanceReader(accountRepo)

	a, _ := create.Execute(ctx, CreateAccountInput{Name: "A", Type: entity.AccountTypeExpense})
	b, _ := create.Execute(ctx, CreateAccountInput{Name: "B", Type: entity.AccountTypeIncome})
	if err := accountRepo.AdjustBalance(ctx, a.ID, -250); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := accountRepo.AdjustBalance(ctx, b.ID, 1000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	balance, err := reader.Balance(ctx, a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance.Amount != -250 {
		t.Errorf("expected -250, got %d", balance.Amount)
	}

	all, err := reader.Balances(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all.Balances) != 2 || all.Total != 750 {
		t.Errorf("unexpected balances: %+v", all)
	}

	if _, err := reader.Balance(ctx, 999); !errors.Is(err, domainerror.ErrAccountNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
