package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmountFromDecimal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		ok       bool
	}{
		{"positive integer", "100", 100, true},
		{"trailing zero fraction is integral", "250.00", 250, true},
		{"trillions", "9000000000000", 9_000_000_000_000, true},
		{"upper bound", decimal.NewFromInt(MaxTransactionAmount).String(), MaxTransactionAmount, true},
		{"zero", "0", 0, false},
		{"negative", "-5", 0, false},
		{"fractional", "10.5", 0, false},
		{"tiny fraction", "0.01", 0, false},
		{"beyond bound", "9223372036854775807", 0, false},
		{"beyond int64", "100000000000000000000000", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AmountFromDecimal(decimal.RequireFromString(tt.input))
			if ok != tt.ok || got != tt.expected {
				t.Errorf("AmountFromDecimal(%s) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestCategoryTypeAccepts(t *testing.T) {
	tests := []struct {
		category    CategoryType
		transaction TransactionType
		expected    bool
	}{
		{CategoryTypeExpense, TransactionTypeExpense, true},
		{CategoryTypeExpense, TransactionTypeIncome, false},
		{CategoryTypeIncome, TransactionTypeIncome, true},
		{CategoryTypeIncome, TransactionTypeExpense, false},
		{CategoryTypeTransfer, TransactionTypeExpense, false},
		{CategoryTypeTransfer, TransactionTypeTransfer, true},
		{CategoryTypeExpense, TransactionTypeTransfer, true},
		{CategoryTypeIncome, TransactionTypeTransfer, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.category)+"/"+string(tt.transaction), func(t *testing.T) {
			if got := tt.category.Accepts(tt.transaction); got != tt.expected {
				t.Errorf("Accepts() = %v, want %v", got, tt.expected)
			}
		})
	}
}
