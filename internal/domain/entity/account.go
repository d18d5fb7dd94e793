// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// AccountType classifies an account. It is an advisory label only and never
// constrains which transactions may reference the account.
type AccountType string

const (
	AccountTypeExpense AccountType = "expense"
	AccountTypeIncome  AccountType = "income"
)

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	return t == AccountTypeExpense || t == AccountTypeIncome
}

// Account represents a money container whose Amount caches its current balance
// in the smallest currency unit.
type Account struct {
	ID        int64
	Name      string
	Type      AccountType
	Amount    int64 // Cached balance, maintained only by the ledger
	Order     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates a new Account entity with an empty balance.
func NewAccount(name string, accountType AccountType, order int) *Account {
	now := time.Now().UTC()

	return &Account{
		Name:      name,
		Type:      accountType,
		Amount:    0,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
