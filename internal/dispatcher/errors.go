package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrPanic indicates command execution panicked. The editor state can
	// no longer be trusted.
	ErrPanic = errors.New("dispatcher: command panic")

	// ErrNoEngine indicates Dispatch was called without an engine.
	ErrNoEngine = errors.New("dispatcher: no engine")
)
