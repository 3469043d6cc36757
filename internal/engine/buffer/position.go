package buffer

import "fmt"

// Position is a column and row in a Document.
// Both are 0-indexed; Column is measured in bytes.
type Position struct {
	Column int
	Row    int
}

// Pos is shorthand for Position{Column: column, Row: row}.
func Pos(column, row int) Position {
	return Position{Column: column, Row: row}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Column, p.Row)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
// Rows are compared first.
func (p Position) Compare(other Position) int {
	if p.Row < other.Row {
		return -1
	}
	if p.Row > other.Row {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}
