package cursor

import (
	"fmt"

	"github.com/dshills/xi/internal/engine/buffer"
)

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// Selection holds the anchor of the current selection, if any.
// The zero value is an inactive selection.
type Selection struct {
	anchor Position
	active bool
}

// Start anchors a selection at pos unless one is already active.
// Restarting an active selection keeps the original anchor.
func (s *Selection) Start(pos Position) {
	if s.active {
		return
	}
	s.anchor = pos
	s.active = true
}

// End clears the selection.
func (s *Selection) End() {
	s.anchor = Position{}
	s.active = false
}

// MoveAnchor relocates the anchor of an active selection.
func (s *Selection) MoveAnchor(pos Position) {
	if s.active {
		s.anchor = pos
	}
}

// IsActive returns true if an anchor is set.
func (s *Selection) IsActive() bool {
	return s.active
}

// Anchor returns the anchor and whether the selection is active.
func (s *Selection) Anchor() (Position, bool) {
	return s.anchor, s.active
}

// Range returns the selected range normalized against the cursor at cur.
//
// Rows are ordered. On a single row the columns are ordered as well;
// across rows the start row keeps the column of whichever end lies on
// it and the end row keeps the other one. An inactive selection returns
// buffer.EmptyRange.
func (s *Selection) Range(cur Position) Range {
	if !s.active {
		return buffer.EmptyRange
	}
	a := s.anchor
	if a.Row == cur.Row {
		return Range{
			Start: Position{Column: min(a.Column, cur.Column), Row: a.Row},
			End:   Position{Column: max(a.Column, cur.Column), Row: a.Row},
		}
	}
	if a.Row < cur.Row {
		return Range{Start: a, End: cur}
	}
	return Range{Start: cur, End: a}
}

// Contains reports whether (column, row) lies inside the selection.
// Rows strictly between the first and last row are fully contained;
// boundary rows are decided by column.
func (s *Selection) Contains(cur Position, column, row int) bool {
	if !s.active {
		return false
	}
	r := s.Range(cur)
	switch {
	case row < r.Start.Row || row > r.End.Row:
		return false
	case r.Start.Row == r.End.Row:
		return column >= r.Start.Column && column < r.End.Column
	case row == r.Start.Row:
		return column >= r.Start.Column
	case row == r.End.Row:
		return column < r.End.Column
	default:
		return true
	}
}

// ClearIfDegenerate ends the selection when its anchor sits at cur.
// It returns true if the selection was cleared.
func (s *Selection) ClearIfDegenerate(cur Position) bool {
	if s.active && s.anchor == cur {
		s.End()
		return true
	}
	return false
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if !s.active {
		return "Selection(none)"
	}
	return fmt.Sprintf("Selection(anchor=%s)", s.anchor)
}
