package db

import "errors"

// Sentinel errors for store operations.
var (
	// ErrDocNotFound is returned by GetDocument only when the store itself
	// reports the id as absent. Connectivity and server failures are never
	// mapped to it.
	ErrDocNotFound = errors.New("db: document not found")
)

// Op constants name the store operation for error context.
const (
	OpPing   = "ping"
	OpGet    = "get"
	OpIndex  = "index"
	OpSearch = "search"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
