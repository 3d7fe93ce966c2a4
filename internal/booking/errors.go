// Package booking implements the table-assignment and
// reservation-lifecycle core: availability checks, capacity-aware table
// allocation, derived table status recomputation, reservation state
// transitions and the order ledger.
package booking

import "fmt"

// Kind classifies an operation failure so the HTTP layer can map it to
// a status code.  Every failed command returns exactly one of these;
// nothing is written to the snapshot before validation completes.
type Kind int

const (
	// KindValidation marks malformed or missing input (HTTP 400).
	KindValidation Kind = iota
	// KindNotFound marks an unknown reservation, table or similar id (HTTP 404).
	KindNotFound
	// KindConflict marks a capacity or time-overlap clash, or the absence
	// of any assignable table (HTTP 409).
	KindConflict
)

// Error is the typed failure returned by every booking operation.  The
// message is user-facing and carries no wrapping prefix.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func notFoundf(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...any) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}
