// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
// A client-provided balance is not accepted: accounts always start at zero.
type CreateAccountRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Type  string `json:"type" binding:"required,oneof=expense income"`
	Order int    `json:"order"`
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Type  *string `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Order *int    `json:"order,omitempty"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Amount    int64     `json:"amount"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Type:      string(account.Type),
		Amount:    account.Amount,
		Order:     account.Order,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// ToAccountListResponse converts a list of accounts to an AccountListResponse.
func ToAccountListResponse(accounts []*entity.Account) AccountListResponse {
	response := AccountListResponse{
		Accounts: make([]AccountResponse, len(accounts)),
	}
	for i, account := range accounts {
		response.Accounts[i] = ToAccountResponse(account)
	}
	return response
}
