package engine

import (
	"fmt"

	"github.com/dshills/xi/internal/engine/buffer"
	"github.com/dshills/xi/internal/engine/cursor"
	"github.com/dshills/xi/internal/renderer/viewport"
)

// Re-export commonly used types for convenience.
type (
	// Position is a column/row position in the document.
	Position = buffer.Position

	// Range is a span between two positions.
	Range = buffer.Range
)

// Engine is the single owner of the editor state: the document, the
// cursor, the selection and the viewport.
type Engine struct {
	doc    *buffer.Document
	cur    cursor.Cursor
	sel    cursor.Selection
	view   *viewport.Viewport
	screen Sizer

	running bool
}

// New creates an engine editing doc. A nil doc starts an empty document.
func New(doc *buffer.Document, opts ...Option) *Engine {
	if doc == nil {
		doc = buffer.NewDocument()
	}
	e := &Engine{
		doc:     doc,
		view:    viewport.New(),
		screen:  FixedSize{Width: DefaultWidth, Height: DefaultHeight},
		running: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Document returns the document being edited.
func (e *Engine) Document() *buffer.Document {
	return e.doc
}

// Cursor returns a copy of the cursor.
func (e *Engine) Cursor() cursor.Cursor {
	return e.cur
}

// Position returns the cursor position.
func (e *Engine) Position() Position {
	return e.cur.Position()
}

// Selection returns a copy of the selection state.
func (e *Engine) Selection() cursor.Selection {
	return e.sel
}

// Viewport returns the viewport.
func (e *Engine) Viewport() *viewport.Viewport {
	return e.view
}

// Size returns the current window size.
func (e *Engine) Size() (width, height int) {
	return e.screen.Size()
}

// SetSizer replaces the source of the window size.
func (e *Engine) SetSizer(s Sizer) {
	if s != nil {
		e.screen = s
	}
}

// Running returns false once Quit has been called.
func (e *Engine) Running() bool {
	return e.running
}

// Quit asks the embedding run loop to stop.
func (e *Engine) Quit() {
	e.running = false
}

// Save writes the document to its path.
func (e *Engine) Save() error {
	return e.doc.Save()
}

// Resize re-corrects the viewport after the window size changed.
func (e *Engine) Resize() {
	e.correctScroll()
}

// line returns the line under the cursor. It is looked up by row on
// every call so no stale handle survives an edit.
func (e *Engine) line() *buffer.Line {
	return e.doc.Line(e.cur.Row)
}

// lineLen returns the length of the line under the cursor.
func (e *Engine) lineLen() int {
	return e.doc.LineLen(e.cur.Row)
}

// clampColumn keeps the cursor column inside its line without touching
// the remembered column.
func (e *Engine) clampColumn() {
	if n := e.lineLen(); e.cur.Column > n {
		e.cur.Column = n
	}
	if e.cur.Column < 0 {
		e.cur.Column = 0
	}
}

func (e *Engine) correctHorizontalScroll() {
	width, _ := e.screen.Size()
	e.view.CorrectHorizontal(e.cur.Column, width)
}

func (e *Engine) correctVerticalScroll() {
	_, height := e.screen.Size()
	e.view.CorrectVertical(e.cur.Row, height)
}

func (e *Engine) correctScroll() {
	e.correctHorizontalScroll()
	e.correctVerticalScroll()
}

// CheckInvariants verifies the document, cursor, selection and viewport
// invariants and returns an error describing the first violation.
func (e *Engine) CheckInvariants() error {
	n := e.doc.LineCount()
	if n < 1 {
		return fmt.Errorf("%w: document has %d lines", ErrInvariant, n)
	}
	for row := 0; row < n; row++ {
		l := e.doc.Line(row)
		if l.Len() < 0 || l.Len() > l.Cap() {
			return fmt.Errorf("%w: line %d has length %d capacity %d", ErrInvariant, row, l.Len(), l.Cap())
		}
	}
	if e.cur.Row < 0 || e.cur.Row >= n {
		return fmt.Errorf("%w: cursor row %d outside [0,%d)", ErrInvariant, e.cur.Row, n)
	}
	if e.cur.Column < 0 || e.cur.Column > e.lineLen() {
		return fmt.Errorf("%w: cursor column %d outside [0,%d]", ErrInvariant, e.cur.Column, e.lineLen())
	}
	if anchor, ok := e.sel.Anchor(); ok {
		if anchor.Row < 0 || anchor.Row >= n {
			return fmt.Errorf("%w: anchor row %d outside [0,%d)", ErrInvariant, anchor.Row, n)
		}
		if ll := e.doc.Line(anchor.Row).Len(); anchor.Column < 0 || anchor.Column > ll {
			return fmt.Errorf("%w: anchor column %d outside [0,%d]", ErrInvariant, anchor.Column, ll)
		}
		if anchor == e.cur.Position() {
			return fmt.Errorf("%w: degenerate selection at %s", ErrInvariant, anchor)
		}
	}
	width, height := e.screen.Size()
	if !e.view.Visible(e.cur.Position(), width, height) {
		return fmt.Errorf("%w: cursor %s outside viewport (%d,%d)", ErrInvariant, e.cur.Position(), e.view.ScrollX, e.view.ScrollY)
	}
	return nil
}
