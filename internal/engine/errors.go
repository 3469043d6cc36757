package engine

import (
	"errors"
	"fmt"
)

// Errors returned by engine operations.
var (
	// ErrInvariant indicates the editor state violates an engine invariant.
	ErrInvariant = errors.New("invariant violated")
)

// ContractError is the panic value raised when a buffer operation
// rejects indices the engine computed. It always indicates a bug in the
// engine, never bad user input.
type ContractError struct {
	Op  string // Engine operation that issued the buffer call
	Err error  // Error returned by the buffer
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("engine contract violated in %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying buffer error.
func (e *ContractError) Unwrap() error {
	return e.Err
}

// must panics with a ContractError if err is non-nil.
func must(op string, err error) {
	if err != nil {
		panic(&ContractError{Op: op, Err: err})
	}
}
