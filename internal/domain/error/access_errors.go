// Package error defines domain-specific errors for the ledger service.
package error

// AccessErrorCode defines error codes for request access failures raised by
// middleware before a use case runs.
type AccessErrorCode string

const (
	ErrCodeMissingToken AccessErrorCode = "AUTH-030001"
	ErrCodeInvalidToken AccessErrorCode = "AUTH-030002"
	ErrCodeRateLimited  AccessErrorCode = "AUTH-040001"
)
