package dispatcher

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/dshills/xi/internal/engine"
	"github.com/dshills/xi/internal/input"
)

// Config holds dispatcher configuration options.
type Config struct {
	// EnableMetrics enables dispatch timing and statistics collection.
	EnableMetrics bool

	// RecoverFromPanic converts a panic during execution into a fatal
	// Result instead of unwinding through the caller.
	RecoverFromPanic bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnableMetrics:    false,
		RecoverFromPanic: true,
	}
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}

// PanicError is the error carried by a Result when execution panicked.
type PanicError struct {
	Command Command
	Value   any
	Stack   []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s panicked: %v", e.Command, e.Value)
}

// Unwrap returns the panic value if it is an error, so that
// errors.As can find an *engine.ContractError.
func (e *PanicError) Unwrap() []error {
	if err, ok := e.Value.(error); ok {
		return []error{ErrPanic, err}
	}
	return []error{ErrPanic}
}

func isPanic(err error) bool {
	return errors.Is(err, ErrPanic)
}

// Dispatcher executes input events against an engine.
type Dispatcher struct {
	engine  *engine.Engine
	config  Config
	metrics *Metrics
}

// New creates a dispatcher driving e.
func New(e *engine.Engine, config Config) *Dispatcher {
	d := &Dispatcher{
		engine: e,
		config: config,
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// Engine returns the engine the dispatcher drives.
func (d *Dispatcher) Engine() *engine.Engine {
	return d.engine
}

// Metrics returns the collected metrics, or nil when disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Dispatch resolves ev and executes it.
func (d *Dispatcher) Dispatch(ev input.Event) Result {
	if d.engine == nil {
		return Result{Status: StatusError, Err: ErrNoEngine}
	}
	return d.Execute(Resolve(ev, d.engine.HasSelection()))
}

// Execute runs cmd against the engine, then clears a degenerate
// selection.
func (d *Dispatcher) Execute(cmd Command) Result {
	if d.engine == nil {
		return Result{Command: cmd, Status: StatusError, Err: ErrNoEngine}
	}
	start := time.Now()

	var result Result
	if d.config.RecoverFromPanic {
		result = d.executeWithRecovery(cmd)
	} else {
		result = d.execute(cmd)
	}

	if d.metrics != nil {
		d.metrics.Record(cmd.Name(), time.Since(start), result.Status)
	}
	return result
}

func (d *Dispatcher) executeWithRecovery(cmd Command) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			result = Result{
				Command: cmd,
				Status:  StatusError,
				Err:     &PanicError{Command: cmd, Value: r, Stack: stack[:n]},
			}
		}
	}()
	return d.execute(cmd)
}

func (d *Dispatcher) execute(cmd Command) Result {
	e := d.engine
	result := Result{Command: cmd, Status: StatusOK}

	if cmd.Extend {
		e.StartSelection()
	}

	switch cmd.Kind {
	case KindNone:
		result.Status = StatusNoOp
	case KindMove:
		d.move(cmd.Motion)
	case KindCollapse:
		if cmd.Edge == EdgeEnd {
			e.CollapseSelectionEnd()
		} else {
			e.CollapseSelectionStart()
		}
	case KindEdit:
		d.edit(cmd.Edit)
	case KindInsert:
		e.InsertChar(cmd.Char)
	case KindQuit:
		e.Quit()
		result.Status = StatusQuit
	case KindSave:
		if err := e.Save(); err != nil {
			result.Status = StatusError
			result.Err = fmt.Errorf("save: %w", err)
		}
	}

	e.ClearDegenerateSelection()
	return result
}

func (d *Dispatcher) move(m Motion) {
	e := d.engine
	switch m {
	case MotionLeft:
		e.MoveLeft()
	case MotionRight:
		e.MoveRight()
	case MotionUp:
		e.MoveUp()
	case MotionDown:
		e.MoveDown()
	case MotionLineStart:
		e.MoveStartOfLine()
	case MotionLineEnd:
		e.MoveEndOfLine()
	case MotionFileStart:
		e.MoveStartOfFile()
	case MotionFileEnd:
		e.MoveEndOfFile()
	case MotionPrevWord:
		e.MovePrevWord()
	case MotionNextWord:
		e.MoveNextWord()
	}
}

func (d *Dispatcher) edit(op Edit) {
	e := d.engine
	switch op {
	case EditNewLine:
		e.NewLine()
	case EditBackspace:
		e.Backspace()
	case EditShiftUp:
		e.ShiftLineUp()
	case EditShiftDown:
		e.ShiftLineDown()
	}
}
