package renderer

import (
	"sync"

	"github.com/dshills/xi/internal/engine/buffer"
	"github.com/dshills/xi/internal/renderer/backend"
	"github.com/dshills/xi/internal/renderer/core"
	"github.com/dshills/xi/internal/renderer/viewport"
)

// View provides read access to the editor state being drawn.
// *engine.Engine implements it.
type View interface {
	// Document returns the lines to draw.
	Document() *buffer.Document

	// Position returns the cursor position.
	Position() buffer.Position

	// Viewport returns the scroll offsets.
	Viewport() *viewport.Viewport

	// HasSelection reports whether a selection is active.
	HasSelection() bool

	// InSelection reports whether the character at (column, row) is
	// selected.
	InSelection(column, row int) bool
}

// Placeholder is drawn for bytes that are not one cell wide.
const Placeholder = '?'

// Renderer draws a View onto a backend.
type Renderer struct {
	mu sync.Mutex

	backend backend.Backend
	theme   Theme
	frames  uint64
}

// New creates a renderer drawing to b.
func New(b backend.Backend, theme Theme) *Renderer {
	return &Renderer{
		backend: b,
		theme:   theme,
	}
}

// Theme returns the current theme.
func (r *Renderer) Theme() Theme {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.theme
}

// SetTheme replaces the theme used for subsequent frames.
func (r *Renderer) SetTheme(theme Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.theme = theme
}

// Frames returns the number of frames rendered.
func (r *Renderer) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Render draws one complete frame.
func (r *Renderer) Render(v View) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.backend
	width, height := b.Size()
	doc := v.Document()
	vp := v.Viewport()

	b.Clear()
	for y := 0; y < height; y++ {
		row := y + vp.ScrollY
		if row >= doc.LineCount() {
			break
		}
		r.drawLine(v, doc.Line(row), row, y, width, vp.ScrollX)
	}

	if v.HasSelection() {
		b.HideCursor()
	} else {
		b.ShowCursor(vp.ToScreen(v.Position()))
	}
	b.Show()
	r.frames++
}

// drawLine draws the visible part of line at screen row y. Empty lines
// are left blank. The cell just past the end of the line is drawn too,
// so a selected line ending shows up.
func (r *Renderer) drawLine(v View, line *buffer.Line, row, y, width, scrollX int) {
	n := line.Len()
	if n == 0 {
		return
	}
	for x := 0; x < width; x++ {
		idx := x + scrollX
		if idx > n {
			break
		}
		ch := ' '
		if idx < n {
			ch = DisplayRune(line.At(idx))
		}
		style := r.theme.Text
		if v.InSelection(idx, row) {
			style = r.theme.Selection
		}
		r.backend.SetCell(x, y, core.NewStyledCell(ch, style))
	}
}

// DisplayRune returns the rune drawn for byte b. A tab is drawn as a
// space. Any other byte that is not exactly one cell wide is drawn as
// Placeholder.
func DisplayRune(b byte) rune {
	if b == '\t' {
		return ' '
	}
	r := rune(b)
	if core.RuneWidth(r) != 1 {
		return Placeholder
	}
	return r
}
