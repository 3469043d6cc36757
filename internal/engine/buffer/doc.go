// Package buffer provides the line storage of the editor engine: a
// Document made of Lines, each Line an owned, growable sequence of
// single-byte characters.
//
// The buffer package provides:
//
//   - Line: a byte slice with a tracked length and a power-of-two capacity
//     that doubles on demand and never shrinks
//   - Document: an ordered sequence of Lines that always holds at least one
//     Line
//   - Structural edits: split, join, swap and multi-row range deletion
//   - Loading from and saving to files
//
// Basic usage:
//
//	doc := buffer.NewDocument()
//	line := doc.Line(0)
//	line.Append([]byte("hello world"))
//
//	// Split "hello world" into "hello" and " world"
//	doc.SplitLine(0, 5)
//
//	// Join them back together
//	doc.JoinLineIntoPrevious(1)
//
// Positions:
//
// Position is a (Column, Row) pair, both 0-indexed. Column counts bytes
// from the start of the line, one byte per screen cell.
//
// Ownership:
//
// Each Line is owned by exactly one Document. Growth reallocates the
// Line's internal storage, never the Line itself, so a *Line obtained
// from Document.Line stays valid until the Line is removed. Callers that
// keep positions across edits should keep row indices, not *Line values.
//
// Thread Safety:
//
// Documents are not safe for concurrent use. The editor processes one
// command at a time on a single goroutine.
package buffer
