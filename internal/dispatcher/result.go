package dispatcher

import "fmt"

// Status indicates the outcome of a dispatch.
type Status uint8

const (
	// StatusOK indicates the command ran.
	StatusOK Status = iota
	// StatusNoOp indicates the event resolved to no command.
	StatusNoOp
	// StatusQuit indicates the editor should stop.
	StatusQuit
	// StatusError indicates the command failed; see Result.Err.
	StatusError
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusQuit:
		return "quit"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of dispatching one event.
type Result struct {
	Command Command
	Status  Status
	Err     error
}

// IsOK returns true unless the dispatch failed.
func (r Result) IsOK() bool {
	return r.Status != StatusError
}

// Fatal returns true if the editor must stop because its state is no
// longer consistent.
func (r Result) Fatal() bool {
	return r.Status == StatusError && isPanic(r.Err)
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %s: %v", r.Command, r.Status, r.Err)
	}
	return fmt.Sprintf("%s: %s", r.Command, r.Status)
}
