// Package error defines domain-specific errors for the ledger service.
package error

import "strings"

// ErrorKind groups error codes by how callers should react to them.
type ErrorKind string

const (
	// KindValidation marks structurally invalid input.
	KindValidation ErrorKind = "validation"
	// KindReference marks a reference to an entity that does not exist.
	KindReference ErrorKind = "reference"
	// KindConflict marks a request that clashes with current stored state.
	KindConflict ErrorKind = "conflict"
	// KindIntegrity marks a broken ledger invariant. It should never surface.
	KindIntegrity ErrorKind = "integrity"
	// KindUnknown is reported for malformed codes.
	KindUnknown ErrorKind = "unknown"
)

// kindOf derives the kind from a code of the form XXX-KKYYYY.
func kindOf(code string) ErrorKind {
	_, rest, found := strings.Cut(code, "-")
	if !found || len(rest) < 2 {
		return KindUnknown
	}
	switch rest[:2] {
	case "01":
		return KindValidation
	case "02":
		return KindReference
	case "03":
		return KindConflict
	case "09":
		return KindIntegrity
	}
	return KindUnknown
}
