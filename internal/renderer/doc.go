// Package renderer draws the editor state onto a terminal backend.
//
// Every frame is drawn from scratch: the screen is cleared, each visible
// non-empty line is written cell by cell starting at the viewport's
// horizontal offset, and the frame is presented. Characters under the
// selection, including the position just past the end of a selected
// line, use the selection style.
//
// The cursor is shown at its screen position when no selection is
// active and hidden otherwise.
//
// Lines hold bytes. Each byte is shown as the character with the same
// code point; bytes that do not occupy exactly one terminal cell are
// replaced by a placeholder so columns stay aligned with the document.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultTheme())
//	r.Render(eng)
package renderer
