package engine

// MoveLeft moves one column left, wrapping to the end of the previous
// line at column 0. It does nothing at the start of the document.
func (e *Engine) MoveLeft() {
	if e.cur.Column > 0 {
		e.cur.SetColumn(e.cur.Column - 1)
		e.correctScroll()
		return
	}
	if e.cur.Row == 0 {
		return
	}
	e.cur.Row--
	e.cur.SetColumn(e.lineLen())
	e.correctScroll()
}

// MoveRight moves one column right, wrapping to the start of the next
// line at the end of a line. It does nothing at the end of the document.
func (e *Engine) MoveRight() {
	if e.cur.Column < e.lineLen() {
		e.cur.SetColumn(e.cur.Column + 1)
		e.correctScroll()
		return
	}
	if e.cur.Row == e.doc.LastRow() {
		return
	}
	e.cur.Row++
	e.cur.SetColumn(0)
	e.correctScroll()
}

// MoveUp moves to the previous line, aiming for the remembered column.
func (e *Engine) MoveUp() {
	if e.cur.Row == 0 {
		return
	}
	e.moveVertical(e.cur.Row - 1)
}

// MoveDown moves to the next line, aiming for the remembered column.
func (e *Engine) MoveDown() {
	if e.cur.Row == e.doc.LastRow() {
		return
	}
	e.moveVertical(e.cur.Row + 1)
}

// moveVertical changes row keeping the column the first vertical move of
// a run started from. A shorter line clamps the column but the
// remembered column survives for the next move.
func (e *Engine) moveVertical(row int) {
	want := e.cur.Remember()
	e.cur.Row = row
	e.cur.Column = want
	e.clampColumn()
	e.correctScroll()
}

// MoveStartOfLine moves to column 0.
func (e *Engine) MoveStartOfLine() {
	e.cur.SetColumn(0)
	e.correctScroll()
}

// MoveEndOfLine moves past the last character of the line.
func (e *Engine) MoveEndOfLine() {
	e.cur.SetColumn(e.lineLen())
	e.correctScroll()
}

// MoveStartOfFile moves to (0,0).
func (e *Engine) MoveStartOfFile() {
	e.cur.MoveTo(Position{})
	e.correctScroll()
}

// MoveEndOfFile moves to the end of the last line.
func (e *Engine) MoveEndOfFile() {
	row := e.doc.LastRow()
	e.cur.MoveTo(Position{Column: e.doc.LineLen(row), Row: row})
	e.correctScroll()
}

// MoveTo places the cursor at pos, clamped into the document.
func (e *Engine) MoveTo(pos Position) {
	row := min(max(pos.Row, 0), e.doc.LastRow())
	col := min(max(pos.Column, 0), e.doc.LineLen(row))
	e.cur.MoveTo(Position{Column: col, Row: row})
	e.correctScroll()
}
