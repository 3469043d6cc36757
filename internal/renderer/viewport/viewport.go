// Package viewport provides the scroll state of the visible window into
// a document.
package viewport

import "github.com/dshills/xi/internal/engine/buffer"

// Viewport holds the horizontal and vertical scroll offsets.
// The window size is not stored: it belongs to the terminal and is
// passed in on every correction.
type Viewport struct {
	ScrollX int // First visible column
	ScrollY int // First visible row
}

// New creates a viewport scrolled to the top-left corner.
func New() *Viewport {
	return &Viewport{}
}

// CorrectHorizontal scrolls so that column is visible in a window of
// the given width.
func (v *Viewport) CorrectHorizontal(column, width int) {
	v.ScrollX = correct(v.ScrollX, column, width)
}

// CorrectVertical scrolls so that row is visible in a window of the
// given height.
func (v *Viewport) CorrectVertical(row, height int) {
	v.ScrollY = correct(v.ScrollY, row, height)
}

// Correct scrolls in both directions so that pos is visible.
func (v *Viewport) Correct(pos buffer.Position, width, height int) {
	v.CorrectHorizontal(pos.Column, width)
	v.CorrectVertical(pos.Row, height)
}

// Visible reports whether pos lies inside the window.
func (v *Viewport) Visible(pos buffer.Position, width, height int) bool {
	width, height = max(width, 1), max(height, 1)
	return pos.Column >= v.ScrollX && pos.Column < v.ScrollX+width &&
		pos.Row >= v.ScrollY && pos.Row < v.ScrollY+height
}

// ToScreen converts a document position to window coordinates.
func (v *Viewport) ToScreen(pos buffer.Position) (x, y int) {
	return pos.Column - v.ScrollX, pos.Row - v.ScrollY
}

// correct returns the new offset that brings index into [offset, offset+size).
func correct(offset, index, size int) int {
	// Guard against zero or negative sizes reported mid-resize
	if size < 1 {
		size = 1
	}
	if index >= size+offset {
		return index - size + 1
	}
	if index < offset {
		return index
	}
	return offset
}
