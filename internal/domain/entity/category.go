// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// CategoryType represents the type of category.
type CategoryType string

const (
	CategoryTypeExpense  CategoryType = "expense"
	CategoryTypeIncome   CategoryType = "income"
	CategoryTypeTransfer CategoryType = "transfer"
)

// IsValid reports whether t is a known category type.
func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryTypeExpense, CategoryTypeIncome, CategoryTypeTransfer:
		return true
	}
	return false
}

// Accepts reports whether a transaction of the given type may be created
// against a category of type t. Transfers may use any category.
func (t CategoryType) Accepts(transactionType TransactionType) bool {
	if transactionType == TransactionTypeTransfer {
		return true
	}
	return string(t) == string(transactionType)
}

// Category represents a transaction category in the ledger.
type Category struct {
	ID        int64
	Name      string
	Type      CategoryType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string, categoryType CategoryType) *Category {
	now := time.Now().UTC()

	return &Category{
		Name:      name,
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
