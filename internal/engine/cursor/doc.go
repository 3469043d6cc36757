// Package cursor provides the cursor and selection state of the editor.
//
// The cursor package handles:
//
//   - Cursor: a (Column, Row) position plus a remembered column used
//     across consecutive vertical moves
//   - Selection: an optional anchor which, together with the cursor,
//     defines the selected range
//
// Selection Model:
//
// A selection is active while its anchor is set. The other end of the
// selection is always the cursor, so moving the cursor extends or shrinks
// the selection. Starting a selection that is already active keeps the
// original anchor.
//
// Normalized ranges order the two ends by row. On a single row the
// columns are ordered too; across rows each end keeps its own column:
//
//	sel.Start(cur.Position())
//	r := sel.Range(cur.Position())  // r.Start is never after r.End
//
// When the anchor and the cursor meet, the selection is degenerate and
// ClearIfDegenerate drops it.
//
// Thread Safety:
//
// Cursor and Selection are plain values owned by the editor engine and
// are not safe for concurrent mutation.
package cursor
