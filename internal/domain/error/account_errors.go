// Package error defines domain-specific errors for the ledger service.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountNameRequired is returned when the account name is empty.
	ErrAccountNameRequired = errors.New("account name is required")

	// ErrAccountNameTooLong is returned when the account name exceeds the maximum length.
	ErrAccountNameTooLong = errors.New("account name too long")

	// ErrInvalidAccountType is returned when the account type is invalid.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrAccountInUse is returned when deleting an account that transactions still reference.
	ErrAccountInUse = errors.New("account is referenced by transactions")
)

// AccountErrorCode defines error codes for account errors.
type AccountErrorCode string

const (
	ErrCodeAccountNameRequired  AccountErrorCode = "ACC-010001"
	ErrCodeAccountNameTooLong   AccountErrorCode = "ACC-010002"
	ErrCodeInvalidAccountType   AccountErrorCode = "ACC-010003"
	ErrCodeMissingAccountFields AccountErrorCode = "ACC-010004"
	ErrCodeAccountNotFound      AccountErrorCode = "ACC-020001"
	ErrCodeAccountInUse         AccountErrorCode = "ACC-030001"
)

// Kind returns the kind encoded in the code.
func (c AccountErrorCode) Kind() ErrorKind {
	return kindOf(string(c))
}

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
