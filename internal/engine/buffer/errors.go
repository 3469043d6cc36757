package buffer

import (
	"errors"
	"fmt"
)

// Errors returned by buffer operations.
var (
	// ErrIndexOutOfRange indicates an index outside a Line's or Document's valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrLastLine indicates an attempt to remove the only remaining line.
	ErrLastLine = errors.New("cannot remove the last line")

	// ErrNotAdjacent indicates a swap between rows that are not neighbours.
	ErrNotAdjacent = errors.New("rows are not adjacent")

	// ErrNoPath indicates a save was requested for a document without a path.
	ErrNoPath = errors.New("document has no path")
)

// BoundsError describes an index that violated a Line or Document contract.
type BoundsError struct {
	Op    string // Operation name (e.g., "insert", "delete")
	Index int    // Offending index
	Limit int    // Largest valid index for the operation
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d]", e.Op, e.Index, e.Limit)
}

// Unwrap returns ErrIndexOutOfRange so callers can use errors.Is.
func (e *BoundsError) Unwrap() error {
	return ErrIndexOutOfRange
}

func boundsError(op string, index, limit int) error {
	return &BoundsError{Op: op, Index: index, Limit: limit}
}

// OpError records a failed file operation on a document.
type OpError struct {
	Op   string // "open" or "save"
	Path string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *OpError) Unwrap() error {
	return e.Err
}
