// Package engine provides the editing core of xi.
//
// The engine package owns all mutable editor state and exposes every
// navigation and editing operation as a method on Engine.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: Line and Document storage with amortized growth
//   - cursor: the cursor position, remembered column and selection anchor
//   - viewport (renderer/viewport): scroll offsets corrected after every
//     operation
//
// # State
//
// An Engine holds one Document, one Cursor, one Selection and one
// Viewport. The window size is not part of the state; it is read from a
// Sizer (normally the terminal backend) each time the viewport is
// corrected.
//
// # Invariants
//
// After every exported operation:
//
//   - the document has at least one line
//   - 0 <= cursor row < line count
//   - 0 <= cursor column <= length of the cursor's line
//   - the cursor lies inside the viewport
//
// Operations clamp their targets before mutating anything, so no input
// can drive the buffer out of range. A buffer error that still surfaces
// is a programming error; the engine panics with a *ContractError rather
// than continue on a corrupt buffer.
//
// # Basic Usage
//
//	doc := buffer.NewDocumentFromStrings("hello world")
//	e := engine.New(doc, engine.WithSizer(term))
//
//	e.MoveNextWord()        // cursor at (5,0)
//	e.StartSelection()
//	e.MoveEndOfLine()       // selects " world"
//	e.Backspace()           // document is now "hello"
//
// # Thread Safety
//
// Engine is not safe for concurrent use. Commands are processed one at a
// time on the event loop goroutine.
package engine
