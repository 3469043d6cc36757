package engine

// InsertChar inserts ch at the cursor and moves right. An active
// selection is replaced.
func (e *Engine) InsertChar(ch byte) {
	e.DeleteSelection()
	must("insert", e.line().InsertAt(e.cur.Column, ch))
	e.cur.SetColumn(e.cur.Column + 1)
	e.correctScroll()
}

// NewLine splits the line at the cursor and moves to the start of the
// new line. An active selection is deleted first.
func (e *Engine) NewLine() {
	e.DeleteSelection()
	must("newline", e.doc.SplitLine(e.cur.Row, e.cur.Column))
	e.cur.Row++
	e.cur.SetColumn(0)
	e.correctScroll()
}

// Backspace deletes the selection if there is one, otherwise the
// character left of the cursor. At column 0 the line is joined onto the
// previous one. Nothing happens at the start of the document.
func (e *Engine) Backspace() {
	if e.DeleteSelection() {
		return
	}
	if e.cur.Column > 0 {
		col := e.cur.Column
		must("backspace", e.line().DeleteRange(col-1, col))
		e.cur.SetColumn(col - 1)
		e.correctScroll()
		return
	}
	if e.cur.Row == 0 {
		return
	}
	prev := e.cur.Row - 1
	joinAt := e.doc.LineLen(prev)
	must("backspace", e.doc.JoinLineIntoPrevious(e.cur.Row))
	e.cur.MoveTo(Position{Column: joinAt, Row: prev})
	e.correctScroll()
}

// DeleteRange removes the text in [start, end), ends any selection and
// leaves the cursor at start. start must not come after end and both
// must lie inside the document.
func (e *Engine) DeleteRange(start, end Position) {
	must("delete range", e.doc.DeleteRange(start, end))
	e.sel.End()
	e.cur.MoveTo(start)
	e.correctScroll()
}

// DeleteSelection deletes the selected text and reports whether there
// was a selection to delete.
func (e *Engine) DeleteSelection() bool {
	if !e.sel.IsActive() {
		return false
	}
	r := e.SelectionRange()
	e.DeleteRange(r.Start, r.End)
	return true
}

// ShiftLineUp swaps the cursor's line with the one above it. The cursor
// and a selection anchor on either line follow their text.
func (e *Engine) ShiftLineUp() {
	if e.cur.Row == 0 {
		return
	}
	must("shift up", e.doc.SwapAdjacent(e.cur.Row, e.cur.Row-1))
	e.swapAnchorRows(e.cur.Row, e.cur.Row-1)
	e.cur.Row--
	e.cur.Forget()
	e.correctScroll()
}

// ShiftLineDown swaps the cursor's line with the one below it. The
// cursor and a selection anchor on either line follow their text.
func (e *Engine) ShiftLineDown() {
	if e.cur.Row == e.doc.LastRow() {
		return
	}
	must("shift down", e.doc.SwapAdjacent(e.cur.Row, e.cur.Row+1))
	e.swapAnchorRows(e.cur.Row, e.cur.Row+1)
	e.cur.Row++
	e.cur.Forget()
	e.correctScroll()
}

// swapAnchorRows moves a selection anchor sitting on row a or b to the
// other row after the two lines were swapped.
func (e *Engine) swapAnchorRows(a, b int) {
	anchor, ok := e.sel.Anchor()
	if !ok {
		return
	}
	switch anchor.Row {
	case a:
		anchor.Row = b
	case b:
		anchor.Row = a
	default:
		return
	}
	anchor.Column = min(anchor.Column, e.doc.Line(anchor.Row).Len())
	e.sel.MoveAnchor(anchor)
}
