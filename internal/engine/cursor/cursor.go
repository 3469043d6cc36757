package cursor

import (
	"fmt"

	"github.com/dshills/xi/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Cursor is the current edit position.
type Cursor struct {
	Column int
	Row    int

	// remembered is the column to restore on the next vertical move.
	remembered    int
	hasRemembered bool
}

// New creates a cursor at the given column and row.
func New(column, row int) Cursor {
	return Cursor{Column: column, Row: row}
}

// Position returns the cursor's position.
func (c *Cursor) Position() Position {
	return Position{Column: c.Column, Row: c.Row}
}

// SetColumn moves the cursor to column and forgets the remembered column.
func (c *Cursor) SetColumn(column int) {
	c.Column = column
	c.Forget()
}

// MoveTo moves the cursor to pos and forgets the remembered column.
func (c *Cursor) MoveTo(pos Position) {
	c.Row = pos.Row
	c.SetColumn(pos.Column)
}

// Remember returns the column a vertical move should aim for.
// The first call after a non-vertical move captures the current column;
// later calls return that captured value.
func (c *Cursor) Remember() int {
	if !c.hasRemembered {
		c.remembered = c.Column
		c.hasRemembered = true
	}
	return c.remembered
}

// Remembered returns the remembered column and whether one is set.
func (c *Cursor) Remembered() (int, bool) {
	return c.remembered, c.hasRemembered
}

// Forget clears the remembered column.
func (c *Cursor) Forget() {
	c.remembered = 0
	c.hasRemembered = false
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	if c.hasRemembered {
		return fmt.Sprintf("Cursor(%d,%d want=%d)", c.Column, c.Row, c.remembered)
	}
	return fmt.Sprintf("Cursor(%d,%d)", c.Column, c.Row)
}
