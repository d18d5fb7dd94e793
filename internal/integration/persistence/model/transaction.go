// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Rows are hard-deleted: a removed transaction must stop contributing to
// any balance.
type TransactionModel struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement"`
	Type                 string    `gorm:"type:varchar(10);not null;index"`
	Amount               int64     `gorm:"type:bigint;not null"`
	AccountID            int64     `gorm:"not null;index"`
	DestinationAccountID *int64    `gorm:"index"`
	CategoryID           int64     `gorm:"not null;index"`
	Date                 time.Time `gorm:"not null;index"`
	Note                 string    `gorm:"type:text"`
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Account            *AccountModel  `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:RESTRICT"`
	DestinationAccount *AccountModel  `gorm:"foreignKey:DestinationAccountID;references:ID;constraint:OnDelete:RESTRICT"`
	Category           *CategoryModel `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:                   m.ID,
		Type:                 entity.TransactionType(m.Type),
		Amount:               m.Amount,
		AccountID:            m.AccountID,
		DestinationAccountID: m.DestinationAccountID,
		CategoryID:           m.CategoryID,
		Date:                 m.Date,
		Note:                 m.Note,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:                   transaction.ID,
		Type:                 string(transaction.Type),
		Amount:               transaction.Amount,
		AccountID:            transaction.AccountID,
		DestinationAccountID: transaction.DestinationAccountID,
		CategoryID:           transaction.CategoryID,
		Date:                 transaction.Date,
		Note:                 transaction.Note,
		CreatedAt:            transaction.CreatedAt,
		UpdatedAt:            transaction.UpdatedAt,
	}
}
