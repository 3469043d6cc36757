// Package dispatcher turns input events into editor commands and runs
// them against the engine.
//
// # Resolution
//
// Resolve maps an input.Event to a tagged Command. Key events are
// resolved in a fixed precedence order, highest first:
//
//  1. Shift+arrow: extend the selection, then perform the motion the
//     remaining modifiers select
//  2. arrow without Shift while a selection is active: collapse the
//     selection to its start (Left, Up) or end (Right, Down)
//  3. Ctrl+arrow: start or end of line (Left, Right), start or end of
//     file (Up, Down)
//  4. Alt+arrow: previous or next word (Left, Right), shift the line
//     (Up, Down)
//  5. the base table: arrows, Enter, Backspace, Quit, Save
//
// Character events insert one byte. Characters above input.MaxChar
// resolve to a no-op command and are dropped silently.
//
// # Execution
//
// Dispatch resolves an event, executes the command against the engine
// and then always clears a selection whose anchor has returned to the
// cursor. The outcome is reported as a Result.
//
// A contract violation inside the engine is recovered and reported as a
// Result whose error wraps ErrPanic; callers must treat it as fatal.
package dispatcher
