package service

import "errors"

// Error kinds returned by the core operations. Callers classify with
// errors.Is; the transport layer maps each kind to an HTTP status.
var (
	// ErrValidation marks missing or malformed required input.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced entity id that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks an operation that would break referential
	// integrity, such as deleting a vendor still in use.
	ErrConflict = errors.New("conflict")
	// ErrCorruptData marks a document that exists but cannot be parsed.
	// Operator intervention is required; the document is never discarded.
	ErrCorruptData = errors.New("corrupt data")
	// ErrStorage marks a document persistence I/O failure.
	ErrStorage = errors.New("storage failure")
)
