// Package entity defines the core business entities for the domain layer.
package entity

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction.
type TransactionType string

const (
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeTransfer TransactionType = "transfer"
)

// MaxTransactionAmount bounds a single transaction amount so that the
// difference between two effects on one account always fits in an int64.
const MaxTransactionAmount int64 = math.MaxInt64 / 4

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeExpense, TransactionTypeIncome, TransactionTypeTransfer:
		return true
	}
	return false
}

// Transaction represents a ledger transaction. Amount is always positive; the
// sign of its effect is determined by Type and by the account's role.
type Transaction struct {
	ID                   int64
	Type                 TransactionType
	Amount               int64
	AccountID            int64
	DestinationAccountID *int64 // Set only for transfers
	CategoryID           int64
	Date                 time.Time
	Note                 string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	transactionType TransactionType,
	amount int64,
	accountID int64,
	destinationAccountID *int64,
	categoryID int64,
	date time.Time,
	note string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		Type:                 transactionType,
		Amount:               amount,
		AccountID:            accountID,
		DestinationAccountID: destinationAccountID,
		CategoryID:           categoryID,
		Date:                 date,
		Note:                 note,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// AmountFromDecimal converts a decimal amount into smallest currency units.
// It reports false for zero, negative, fractional or oversized amounts.
func AmountFromDecimal(amount decimal.Decimal) (int64, bool) {
	if !amount.IsPositive() || !amount.IsInteger() {
		return 0, false
	}
	if amount.GreaterThan(decimal.NewFromInt(MaxTransactionAmount)) {
		return 0, false
	}
	return amount.IntPart(), true
}
