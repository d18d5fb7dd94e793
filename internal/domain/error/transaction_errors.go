// Package error defines domain-specific errors for the ledger service.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when the transaction date is invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidTransactionAmount is returned when the amount is not a positive integer.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrAccountNotFoundForTransaction is returned when the source account does not exist.
	ErrAccountNotFoundForTransaction = errors.New("account not found")

	// ErrDestinationAccountNotFound is returned when the transfer destination does not exist.
	ErrDestinationAccountNotFound = errors.New("destination account not found")

	// ErrCategoryNotFoundForTransaction is returned when the specified category is not found.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrCategoryTypeMismatch is returned when the category type does not accept the transaction type.
	ErrCategoryTypeMismatch = errors.New("category type does not match transaction type")

	// ErrSelfTransfer is returned when a transfer uses the same source and destination account.
	ErrSelfTransfer = errors.New("transfer source and destination must differ")

	// ErrDestinationRequired is returned when a transfer has no destination account.
	ErrDestinationRequired = errors.New("transfer requires a destination account")

	// ErrDestinationForbidden is returned when a non-transfer carries a destination account.
	ErrDestinationForbidden = errors.New("only transfers may have a destination account")

	// ErrNoteTooLong is returned when the transaction note exceeds the maximum length.
	ErrNoteTooLong = errors.New("note too long")

	// ErrBalanceIntegrity is returned when cached balances disagree with the transactions.
	ErrBalanceIntegrity = errors.New("account balance does not match its transactions")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is the kind and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeCategoryTypeMismatch     TransactionErrorCode = "TXN-010004"
	ErrCodeSelfTransfer             TransactionErrorCode = "TXN-010005"
	ErrCodeDestinationRequired      TransactionErrorCode = "TXN-010006"
	ErrCodeDestinationForbidden     TransactionErrorCode = "TXN-010007"
	ErrCodeNoteTooLong              TransactionErrorCode = "TXN-010008"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010009"

	// Reference errors (02XXXX)
	ErrCodeTransactionNotFound           TransactionErrorCode = "TXN-020001"
	ErrCodeTxnAccountNotFound            TransactionErrorCode = "TXN-020002"
	ErrCodeTxnDestinationAccountNotFound TransactionErrorCode = "TXN-020003"
	ErrCodeTxnCategoryNotFound           TransactionErrorCode = "TXN-020004"

	// Integrity errors (09XXXX)
	ErrCodeBalanceIntegrity TransactionErrorCode = "TXN-090001"
)

// Kind returns the kind encoded in the code.
func (c TransactionErrorCode) Kind() ErrorKind {
	return kindOf(string(c))
}

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
