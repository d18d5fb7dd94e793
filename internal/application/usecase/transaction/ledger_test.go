package transaction

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func TestCreateTransaction_AppliesEffects(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	a := f.account("Wallet")
	b := f.account("Savings")
	salary := f.category("Salary", entity.CategoryTypeIncome)
	food := f.category("Food", entity.CategoryTypeExpense)
	moves := f.category("Moves", entity.CategoryTypeTransfer)

	t.Run("income credits the account", func(t *testing.T) {
		output, err := f.create.Execute(ctx, CreateTransactionInput{
			Type:       entity.TransactionTypeIncome,
			Amount:     amount(1000),
			AccountID:  a,
			CategoryID: salary,
			Date:       testDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Balances) != 1 || output.Balances[0].Amount != 1000 {
			t.Errorf("expected balance 1000, got %+v", output.Balances)
		}
	})

	t.Run("expense debits the account", func(t *testing.T) {
		f.mustCreate(CreateTransactionInput{
			Type:       entity.TransactionTypeExpense,
			Amount:     amount(300),
			AccountID:  a,
			CategoryID: food,
		})
		if got := f.balance(a); got != 700 {
			t.Errorf("expected 700, got %d", got)
		}
	})

	t.Run("transfer moves money between accounts", func(t *testing.T) {
		output, err := f.create.Execute(ctx, CreateTransactionInput{
			Type:                 entity.TransactionTypeTransfer,
			Amount:               amount(200),
			AccountID:            a,
			DestinationAccountID: ptr(b),
			CategoryID:           moves,
			Date:                 testDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Balances) != 2 {
			t.Fatalf("expected two balances, got %d", len(output.Balances))
		}
		if f.balance(a) != 500 || f.balance(b) != 200 {
			t.Errorf("expected 500/200, got %d/%d", f.balance(a), f.balance(b))
		}
	})

	t.Run("transfer accepts any category type", func(t *testing.T) {
		f.mustCreate(CreateTransactionInput{
			Type:                 entity.TransactionTypeTransfer,
			Amount:               amount(50),
			AccountID:            b,
			DestinationAccountID: ptr(a),
			CategoryID:           food,
		})
		if f.balance(a) != 550 || f.balance(b) != 150 {
			t.Errorf("expected 550/150, got %d/%d", f.balance(a), f.balance(b))
		}
	})

	f.assertConsistent()
}

func TestCreateTransaction_Rejections(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	a := f.account("Wallet")
	b := f.account("Savings")
	food := f.category("Food", entity.CategoryTypeExpense)
	salary := f.category("Salary", entity.CategoryTypeIncome)

	f.mustCreate(CreateTransactionInput{
		Type:       entity.TransactionTypeIncome,
		Amount:     amount(500),
		AccountID:  a,
		CategoryID: salary,
	})

	tests := []struct {
		name     string
		input    CreateTransactionInput
		wantCode domainerror.TransactionErrorCode
		wantErr  error
	}{
		{
			name:     "unknown type",
			input:    CreateTransactionInput{Type: "refund", Amount: amount(10), AccountID: a, CategoryID: food, Date: testDate},
			wantCode: domainerror.ErrCodeInvalidTransactionType,
			wantErr:  domainerror.ErrInvalidTransactionType,
		},
		{
			name:     "missing account",
			input:    CreateTransactionInput{Type: entity.TransactionTypeExpense, Amount: amount(10), AccountID: 999, CategoryID: food, Date: testDate},
			wantCode: domainerror.ErrCodeTxnAccountNotFound,
			wantErr:  domainerror.ErrAccountNotFoundForTransaction,
		},
		{
			name:     "transfer without destination",
			input:    CreateTransactionInput{Type: entity.TransactionTypeTransfer, Amount: amount(10), AccountID: a, CategoryID: food, Date: testDate},
			wantCode: domainerror.ErrCodeDestinationRequired,
			wantErr:  domainerror.ErrDestinationRequired,
		},
		{
			name:     "self transfer",
			input:    CreateTransactionInput{Type: entity.TransactionTypeTransfer, Amount: amount(10), AccountID: a, DestinationAccountID: ptr(a), CategoryID: food, Date: testDate},
			wantCode: domainerror.ErrCodeSelfTransfer,
			wantErr:  domainerror.ErrSelfTransfer,
		},
		{
			name:     "missing destination account",
			input:    CreateTransactionInput{Type: entity.TransactionTypeTransfer, Amount: amount(10), AccountID: a, DestinationAccountID: ptr(int64(999)), CategoryID: food, Date: testDate},
			wantCode: domainerror.ErrCodeTxnDestinationAccountNotFound,
			wantErr:  domainerror.ErrDestinationAccountNotFound,
		},
		{
			name:     "destination on expense",
			input:    CreateTransactionInput{Type: entity.TransactionTypeExpense, Amount: amount(10), AccountID: a, DestinationAccountID: ptr(b), CategoryID: food, Date: testDate},
			wantCode: domainerror.ErrCodeDestinationForbidden,
			wantErr:  domainerror.ErrDestinationForbidden,
		},
		{
			name:     "missing category",
			input:    CreateTransactionInput{Type: entity.TransactionTypeExpense, Amount: amount(10), AccountID: a, CategoryID: 999, Date: testDate},
			wantCode: domainerror.ErrCodeTxnCategoryNotFound,
			wantErr:  domainerror.ErrCategoryNotFoundForTransaction,
		},
		{
			name:     "category type mismatch",
			input:    CreateTransactionInput{Type: entity.TransactionTypeExpense, Amount: amount(10), AccountID: a, CategoryID: salary, Date: testDate},
			wantCode: domainerror.ErrCodeCategoryTypeMismatch,
			wantErr:  domainerror.ErrCategoryTypeMismatch,
		},
		{
			name:     "zero amount",
			input:    CreateTransactionInput{Type: entity.TransactionTypeExpense, Amount: amount(0), AccountID: a, CategoryID: food, Date: testDate},
			wantCode: domainerror.ErrCodeInvalidTransactionAmount,
			wantErr:  domainerror.ErrInvalidTransactionAmount,
		},
		{
			name:     "negative amount",
			input:    CreateTransactionInput{Type: entity.TransactionTypeExpense, Amount: amount(-5), AccountID: a, CategoryID: food, Date: testDate},
			wantCode: domainerror.ErrCodeInvalidTransactionAmount,
			wantErr:  domainerror.ErrInvalidTransactionAmount,
		},
		{
			name:     "fractional amount",
			input:    CreateTransactionInput{Type: entity.TransactionTypeExpense, Amount: decimal.RequireFromString("10.5"), AccountID: a, CategoryID: food, Date: testDate},
			wantCode: domainerror.ErrCodeInvalidTransactionAmount,
			wantErr:  domainerror.ErrInvalidTransactionAmount,
		},
		{
			name:     "missing date",
			input:    CreateTransactionInput{Type: entity.TransactionTypeExpense, Amount: amount(10), AccountID: a, CategoryID: food},
			wantCode: domainerror.ErrCodeInvalidTransactionDate,
			wantErr:  domainerror.ErrInvalidTransactionDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.create.Execute(ctx, tt.input)
			if err == nil {
				t.Fatal("expected an error")
			}
			var txnErr *domainerror.TransactionError
			if !errors.As(err, &txnErr) {
				t.Fatalf("expected TransactionError, got %T: %v", err, err)
			}
			if txnErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, txnErr.Code)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error to wrap %v", tt.wantErr)
			}
			if f.balance(a) != 500 || f.balance(b) != 0 {
				t.Errorf("rejected mutation changed balances: %d/%d", f.balance(a), f.balance(b))
			}
		})
	}

	listed, err := f.list.Execute(ctx, ListTransactionsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed.Transactions) != 1 {
		t.Errorf("expected only the seed transaction to be stored, got %d", len(listed.Transactions))
	}
}

func TestCreateTransaction_ReportsMissingAccountBeforeCategory(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.create.Execute(context.Background(), CreateTransactionInput{
		Type:       entity.TransactionTypeExpense,
		Amount:     amount(10),
		AccountID:  1,
		CategoryID: 1,
		Date:       testDate,
	})
	if !errors.Is(err, domainerror.ErrAccountNotFoundForTransaction) {
		t.Errorf("expected account reference error first, got %v", err)
	}
}

func TestLedger_LargeMagnitudes(t *testing.T) {
	f := newLedgerFixture(t)
	a := f.account("Vault")
	salary := f.category("Salary", entity.CategoryTypeIncome)

	created := f.mustCreate(CreateTransactionInput{
		Type:       entity.TransactionTypeIncome,
		Amount:     amount(9_000_000_000_000),
		AccountID:  a,
		CategoryID: salary,
	})
	if got := f.balance(a); got != 9_000_000_000_000 {
		t.Fatalf("expected 9e12, got %d", got)
	}

	if _, err := f.update.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: created.ID,
		Amount:        ptr(amount(9_000_000_000_001)),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := f.balance(a); got != 9_000_000_000_001 {
		t.Errorf("expected 9000000000001, got %d", got)
	}

	_, err := f.create.Execute(context.Background(), CreateTransactionInput{
		Type:       entity.TransactionTypeIncome,
		Amount:     decimal.RequireFromString("99999999999999999999"),
		AccountID:  a,
		CategoryID: salary,
		Date:       testDate,
	})
	if !errors.Is(err, domainerror.ErrInvalidTransactionAmount) {
		t.Errorf("expected oversized amount to be rejected, got %v", err)
	}
	f.assertConsistent()
}

func TestUpdateTransaction_Diffs(t *testing.T) {
	ctx := context.Background()

	t.Run("changing amount and account of an expense", func(t *testing.T) {
		f := newLedgerFixture(t)
		a := f.account("A")
		b := f.account("B")
		food := f.category("Food", entity.CategoryTypeExpense)

		created := f.mustCreate(CreateTransactionInput{
			Type:       entity.TransactionTypeExpense,
			Amount:     amount(100),
			AccountID:  a,
			CategoryID: food,
		})

		output, err := f.update.Execute(ctx, UpdateTransactionInput{
			TransactionID: created.ID,
			Amount:        ptr(amount(40)),
			AccountID:     ptr(b),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.balance(a) != 0 || f.balance(b) != -40 {
			t.Errorf("expected 0/-40, got %d/%d", f.balance(a), f.balance(b))
		}
		if len(output.Balances) != 2 {
			t.Errorf("expected both touched accounts in output, got %+v", output.Balances)
		}
		f.assertConsistent()
	})

	t.Run("expense to transfer and back", func(t *testing.T) {
		f := newLedgerFixture(t)
		a := f.account("A")
		b := f.account("B")
		food := f.category("Food", entity.CategoryTypeExpense)

		created := f.mustCreate(CreateTransactionInput{
			Type:       entity.TransactionTypeExpense,
			Amount:     amount(75),
			AccountID:  a,
			CategoryID: food,
		})

		if _, err := f.update.Execute(ctx, UpdateTransactionInput{
			TransactionID:        created.ID,
			Type:                 ptr(entity.TransactionTypeTransfer),
			DestinationAccountID: ptr(b),
		}); err != nil {
			t.Fatalf("expense to transfer failed: %v", err)
		}
		if f.balance(a) != -75 || f.balance(b) != 75 {
			t.Errorf("after transfer expected -75/75, got %d/%d", f.balance(a), f.balance(b))
		}

		output, err := f.update.Execute(ctx, UpdateTransactionInput{
			TransactionID: created.ID,
			Type:          ptr(entity.TransactionTypeExpense),
		})
		if err != nil {
			t.Fatalf("transfer to expense failed: %v", err)
		}
		if output.Transaction.DestinationAccountID != nil {
			t.Error("expected destination to be dropped")
		}
		if f.balance(a) != -75 || f.balance(b) != 0 {
			t.Errorf("after revert expected -75/0, got %d/%d", f.balance(a), f.balance(b))
		}
		f.assertConsistent()
	})

	t.Run("transfer to income", func(t *testing.T) {
		f := newLedgerFixture(t)
		a := f.account("A")
		b := f.account("B")
		moves := f.category("Moves", entity.CategoryTypeTransfer)
		salary := f.category("Salary", entity.CategoryTypeIncome)

		created := f.mustCreate(CreateTransactionInput{
			Type:                 entity.TransactionTypeTransfer,
			Amount:               amount(60),
			AccountID:            a,
			DestinationAccountID: ptr(b),
			CategoryID:           moves,
		})

		if _, err := f.update.Execute(ctx, UpdateTransactionInput{
			TransactionID:    created.ID,
			Type:             ptr(entity.TransactionTypeIncome),
			ClearDestination: true,
			CategoryID:       ptr(salary),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.balance(a) != 60 || f.balance(b) != 0 {
			t.Errorf("expected 60/0, got %d/%d", f.balance(a), f.balance(b))
		}
		f.assertConsistent()
	})

	t.Run("swapping transfer direction", func(t *testing.T) {
		f := newLedgerFixture(t)
		a := f.account("A")
		b := f.account("B")
		moves := f.category("Moves", entity.CategoryTypeTransfer)

		created := f.mustCreate(CreateTransactionInput{
			Type:                 entity.TransactionTypeTransfer,
			Amount:               amount(30),
			AccountID:            a,
			DestinationAccountID: ptr(b),
			CategoryID:           moves,
		})

		if _, err := f.update.Execute(ctx, UpdateTransactionInput{
			TransactionID:        created.ID,
			AccountID:            ptr(b),
			DestinationAccountID: ptr(a),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.balance(a) != 30 || f.balance(b) != -30 {
			t.Errorf("expected 30/-30, got %d/%d", f.balance(a), f.balance(b))
		}
		f.assertConsistent()
	})

	t.Run("note only update touches no balance", func(t *testing.T) {
		f := newLedgerFixture(t)
		a := f.account("A")
		food := f.category("Food", entity.CategoryTypeExpense)

		created := f.mustCreate(CreateTransactionInput{
			Type:       entity.TransactionTypeExpense,
			Amount:     amount(10),
			AccountID:  a,
			CategoryID: food,
		})

		output, err := f.update.Execute(ctx, UpdateTransactionInput{
			TransactionID: created.ID,
			Note:          ptr("lunch"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.Note != "lunch" {
			t.Errorf("expected note to be updated, got %q", output.Transaction.Note)
		}
		if f.balance(a) != -10 {
			t.Errorf("expected -10, got %d", f.balance(a))
		}
	})
}

func TestUpdateTransaction_TypeSwapRoundTrip(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	a := f.account("A")
	b := f.account("B")
	food := f.category("Food", entity.CategoryTypeExpense)
	salary := f.category("Salary", entity.CategoryTypeIncome)

	f.mustCreate(CreateTransactionInput{Type: entity.TransactionTypeIncome, Amount: amount(1000), AccountID: a, CategoryID: salary})
	created := f.mustCreate(CreateTransactionInput{Type: entity.TransactionTypeExpense, Amount: amount(120), AccountID: a, CategoryID: food})

	startA, startB := f.balance(a), f.balance(b)

	steps := []UpdateTransactionInput{
		{TransactionID: created.ID, Type: ptr(entity.TransactionTypeTransfer), DestinationAccountID: ptr(b)},
		{TransactionID: created.ID, Type: ptr(entity.TransactionTypeIncome), CategoryID: ptr(salary)},
		{TransactionID: created.ID, Type: ptr(entity.TransactionTypeExpense), CategoryID: ptr(food), Amount: ptr(amount(120))},
	}
	for _, step := range steps {
		if _, err := f.update.Execute(ctx, step); err != nil {
			t.Fatalf("update failed: %v", err)
		}
		f.assertConsistent()
	}

	if f.balance(a) != startA || f.balance(b) != startB {
		t.Errorf("expected balances to return to %d/%d, got %d/%d", startA, startB, f.balance(a), f.balance(b))
	}
}

func TestUpdateTransaction_RejectionLeavesStateUntouched(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	a := f.account("A")
	b := f.account("B")
	moves := f.category("Moves", entity.CategoryTypeTransfer)

	created := f.mustCreate(CreateTransactionInput{
		Type:                 entity.TransactionTypeTransfer,
		Amount:               amount(80),
		AccountID:            a,
		DestinationAccountID: ptr(b),
		CategoryID:           moves,
	})

	tests := []struct {
		name    string
		input   UpdateTransactionInput
		wantErr error
	}{
		{"self transfer", UpdateTransactionInput{TransactionID: created.ID, DestinationAccountID: ptr(a)}, domainerror.ErrSelfTransfer},
		{"missing account", UpdateTransactionInput{TransactionID: created.ID, AccountID: ptr(int64(999))}, domainerror.ErrAccountNotFoundForTransaction},
		{"missing category", UpdateTransactionInput{TransactionID: created.ID, CategoryID: ptr(int64(999))}, domainerror.ErrCategoryNotFoundForTransaction},
		{"fractional amount", UpdateTransactionInput{TransactionID: created.ID, Amount: ptr(decimal.RequireFromString("0.5"))}, domainerror.ErrInvalidTransactionAmount},
		{"destination on expense", UpdateTransactionInput{TransactionID: created.ID, Type: ptr(entity.TransactionTypeExpense), DestinationAccountID: ptr(b)}, domainerror.ErrDestinationForbidden},
		{"transfer cleared of destination", UpdateTransactionInput{TransactionID: created.ID, ClearDestination: true}, domainerror.ErrDestinationRequired},
		{"unknown transaction", UpdateTransactionInput{TransactionID: 999, Note: ptr("x")}, domainerror.ErrTransactionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.update.Execute(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if f.balance(a) != -80 || f.balance(b) != 80 {
				t.Errorf("balances changed to %d/%d", f.balance(a), f.balance(b))
			}
			stored, err := f.get.Execute(ctx, created.ID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stored.Amount != 80 || stored.AccountID != a || *stored.DestinationAccountID != b {
				t.Errorf("stored transaction changed: %+v", stored)
			}
		})
	}
}

func TestUpdateTransaction_RechecksCategoryType(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	a := f.account("A")
	b := f.account("B")
	food := f.category("Food", entity.CategoryTypeExpense)
	salary := f.category("Salary", entity.CategoryTypeIncome)
	moves := f.category("Moves", entity.CategoryTypeTransfer)

	created := f.mustCreate(CreateTransactionInput{
		Type:       entity.TransactionTypeExpense,
		Amount:     amount(10),
		AccountID:  a,
		CategoryID: food,
	})

	tests := []struct {
		name  string
		input UpdateTransactionInput
	}{
		{"newly referenced income category", UpdateTransactionInput{TransactionID: created.ID, CategoryID: ptr(salary)}},
		{"newly referenced transfer category", UpdateTransactionInput{TransactionID: created.ID, CategoryID: ptr(moves)}},
		{"type change against current category", UpdateTransactionInput{TransactionID: created.ID, Type: ptr(entity.TransactionTypeIncome)}},
		{"type change with another wrong category", UpdateTransactionInput{TransactionID: created.ID, Type: ptr(entity.TransactionTypeIncome), CategoryID: ptr(moves)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.update.Execute(ctx, tt.input)
			if !errors.Is(err, domainerror.ErrCategoryTypeMismatch) {
				t.Fatalf("expected %v, got %v", domainerror.ErrCategoryTypeMismatch, err)
			}
			if f.balance(a) != -10 || f.balance(b) != 0 {
				t.Errorf("balances changed to %d/%d", f.balance(a), f.balance(b))
			}
			stored, err := f.get.Execute(ctx, created.ID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stored.Type != entity.TransactionTypeExpense || stored.CategoryID != food {
				t.Errorf("stored transaction changed: %+v", stored)
			}
		})
	}

	t.Run("type and category changed together", func(t *testing.T) {
		if _, err := f.update.Execute(ctx, UpdateTransactionInput{
			TransactionID: created.ID,
			Type:          ptr(entity.TransactionTypeIncome),
			CategoryID:    ptr(salary),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := f.balance(a); got != 10 {
			t.Errorf("expected 10, got %d", got)
		}
		f.assertConsistent()
	})

	t.Run("transfer accepts any category", func(t *testing.T) {
		if _, err := f.update.Execute(ctx, UpdateTransactionInput{
			TransactionID:        created.ID,
			Type:                 ptr(entity.TransactionTypeTransfer),
			DestinationAccountID: ptr(b),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.balance(a) != -10 || f.balance(b) != 10 {
			t.Errorf("expected -10/10, got %d/%d", f.balance(a), f.balance(b))
		}
		f.assertConsistent()
	})
}

func TestUpdateTransaction_CategoryTypeChangeIsNotRetroactive(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	a := f.account("A")
	food := f.category("Food", entity.CategoryTypeExpense)

	created := f.mustCreate(CreateTransactionInput{
		Type:       entity.TransactionTypeExpense,
		Amount:     amount(25),
		AccountID:  a,
		CategoryID: food,
	})

	category, err := f.categories.FindByID(ctx, food)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	category.Type = entity.CategoryTypeIncome
	if err := f.categories.Update(ctx, category); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.update.Execute(ctx, UpdateTransactionInput{
		TransactionID: created.ID,
		Amount:        ptr(amount(30)),
	}); err != nil {
		t.Fatalf("updating a transaction whose category changed type failed: %v", err)
	}
	if got := f.balance(a); got != -30 {
		t.Errorf("expected -30, got %d", got)
	}

	_, err = f.create.Execute(ctx, CreateTransactionInput{
		Type:       entity.TransactionTypeExpense,
		Amount:     amount(5),
		AccountID:  a,
		CategoryID: food,
		Date:       testDate,
	})
	if !errors.Is(err, domainerror.ErrCategoryTypeMismatch) {
		t.Errorf("expected new expenses to be rejected, got %v", err)
	}
}

func TestDeleteTransaction(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	a := f.account("A")
	b := f.account("B")
	moves := f.category("Moves", entity.CategoryTypeTransfer)

	created := f.mustCreate(CreateTransactionInput{
		Type:                 entity.TransactionTypeTransfer,
		Amount:               amount(45),
		AccountID:            a,
		DestinationAccountID: ptr(b),
		CategoryID:           moves,
	})

	output, err := f.remove.Execute(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Balances) != 2 {
		t.Errorf("expected two balances, got %+v", output.Balances)
	}
	if f.balance(a) != 0 || f.balance(b) != 0 {
		t.Errorf("expected 0/0, got %d/%d", f.balance(a), f.balance(b))
	}

	if _, err := f.get.Execute(ctx, created.ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("expected deleted transaction to be gone, got %v", err)
	}
	if _, err := f.remove.Execute(ctx, created.ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("expected second delete to fail with not found, got %v", err)
	}
	f.assertConsistent()
}

func TestLedger_ReferenceScenario(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	a := f.account("A")
	b := f.account("B")
	food := f.category("Food", entity.CategoryTypeExpense)
	moves := f.category("Moves", entity.CategoryTypeTransfer)

	expense := f.mustCreate(CreateTransactionInput{Type: entity.TransactionTypeExpense, Amount: amount(100), AccountID: a, CategoryID: food})
	if f.balance(a) != -100 {
		t.Fatalf("expected -100, got %d", f.balance(a))
	}

	if _, err := f.update.Execute(ctx, UpdateTransactionInput{TransactionID: expense.ID, Amount: ptr(amount(200))}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.balance(a) != -200 {
		t.Fatalf("expected -200, got %d", f.balance(a))
	}

	transfer := f.mustCreate(CreateTransactionInput{Type: entity.TransactionTypeTransfer, Amount: amount(50), AccountID: a, DestinationAccountID: ptr(b), CategoryID: moves})
	if f.balance(a) != -250 || f.balance(b) != 50 {
		t.Fatalf("expected -250/50, got %d/%d", f.balance(a), f.balance(b))
	}

	if _, err := f.remove.Execute(ctx, transfer.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.balance(a) != -200 || f.balance(b) != 0 {
		t.Fatalf("expected -200/0, got %d/%d", f.balance(a), f.balance(b))
	}

	if _, err := f.remove.Execute(ctx, expense.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.balance(a) != 0 || f.balance(b) != 0 {
		t.Errorf("expected 0/0, got %d/%d", f.balance(a), f.balance(b))
	}
	f.assertConsistent()
}

func TestLedger_ConcurrentMutations(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	a := f.account("A")
	b := f.account("B")
	food := f.category("Food", entity.CategoryTypeExpense)
	moves := f.category("Moves", entity.CategoryTypeTransfer)

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers*2)

	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := f.create.Execute(ctx, CreateTransactionInput{
				Type: entity.TransactionTypeExpense, Amount: amount(10), AccountID: a, CategoryID: food, Date: testDate,
			})
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := f.create.Execute(ctx, CreateTransactionInput{
				Type: entity.TransactionTypeTransfer, Amount: amount(1), AccountID: b, DestinationAccountID: ptr(a), CategoryID: moves, Date: testDate,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent create failed: %v", err)
		}
	}

	if got := f.balance(a); got != -workers*10+workers {
		t.Errorf("expected %d, got %d", -workers*10+workers, got)
	}
	if got := f.balance(b); got != -workers {
		t.Errorf("expected %d, got %d", -workers, got)
	}
	f.assertConsistent()
}

func TestLedger_ReadsAreIdempotent(t *testing.T) {
	f := newLedgerFixture(t)
	a := f.account("A")
	salary := f.category("Salary", entity.CategoryTypeIncome)
	f.mustCreate(CreateTransactionInput{Type: entity.TransactionTypeIncome, Amount: amount(42), AccountID: a, CategoryID: salary})

	first := f.balance(a)
	for i := 0; i < 5; i++ {
		if got := f.balance(a); got != first {
			t.Fatalf("read %d returned %d, expected %d", i, got, first)
		}
	}
}
