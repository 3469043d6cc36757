package engine

// StartSelection anchors a selection at the cursor. An active selection
// keeps its anchor.
func (e *Engine) StartSelection() {
	e.sel.Start(e.cur.Position())
}

// EndSelection clears the selection.
func (e *Engine) EndSelection() {
	e.sel.End()
}

// HasSelection reports whether a selection is active.
func (e *Engine) HasSelection() bool {
	return e.sel.IsActive()
}

// SelectionRange returns the normalized selection, or EmptyRange when
// no selection is active.
func (e *Engine) SelectionRange() Range {
	return e.sel.Range(e.cur.Position())
}

// InSelection reports whether the character at (column, row) is selected.
func (e *Engine) InSelection(column, row int) bool {
	return e.sel.Contains(e.cur.Position(), column, row)
}

// CollapseSelectionStart clears the selection and moves to its start.
func (e *Engine) CollapseSelectionStart() {
	if !e.sel.IsActive() {
		return
	}
	r := e.SelectionRange()
	e.sel.End()
	e.cur.MoveTo(r.Start)
	e.correctScroll()
}

// CollapseSelectionEnd clears the selection and moves to its end.
func (e *Engine) CollapseSelectionEnd() {
	if !e.sel.IsActive() {
		return
	}
	r := e.SelectionRange()
	e.sel.End()
	e.cur.MoveTo(r.End)
	e.correctScroll()
}

// ClearDegenerateSelection ends a selection whose anchor has come back
// to the cursor. It reports whether a selection was cleared.
func (e *Engine) ClearDegenerateSelection() bool {
	return e.sel.ClearIfDegenerate(e.cur.Position())
}
