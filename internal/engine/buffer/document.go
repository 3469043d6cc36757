package buffer

import (
	"slices"
	"strings"
)

// Document is the ordered sequence of lines being edited.
// A Document always contains at least one line.
type Document struct {
	lines []*Line
	path  string
}

// NewDocument creates a document holding a single empty line.
func NewDocument() *Document {
	return &Document{lines: []*Line{NewLine()}}
}

// NewDocumentFromStrings creates a document with one line per string.
// An empty slice produces a single empty line.
func NewDocumentFromStrings(lines ...string) *Document {
	if len(lines) == 0 {
		return NewDocument()
	}
	d := &Document{lines: make([]*Line, 0, len(lines))}
	for _, s := range lines {
		d.lines = append(d.lines, NewLineFromString(s))
	}
	return d
}

// Path returns the file associated with the document, or "" if unsaved.
func (d *Document) Path() string {
	return d.path
}

// SetPath associates the document with a file.
func (d *Document) SetPath(path string) {
	d.path = path
}

// LineCount returns the number of lines. It is always at least 1.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the line at row. row must be in [0, LineCount()).
func (d *Document) Line(row int) *Line {
	return d.lines[row]
}

// LineLen returns the length of the line at row.
func (d *Document) LineLen(row int) int {
	return d.lines[row].Len()
}

// LastRow returns the index of the last line.
func (d *Document) LastRow() int {
	return len(d.lines) - 1
}

// Lines returns a copy of every line's content.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i, l := range d.lines {
		out[i] = l.String()
	}
	return out
}

// Text returns the document content with lines joined by "\n".
func (d *Document) Text() string {
	return strings.Join(d.Lines(), "\n")
}

func (d *Document) checkRow(op string, row int) error {
	if row < 0 || row >= len(d.lines) {
		return boundsError(op, row, len(d.lines)-1)
	}
	return nil
}

// InsertLineAfter inserts line immediately after index.
// An index of -1 inserts at the top of the document.
func (d *Document) InsertLineAfter(index int, line *Line) error {
	if index < -1 || index >= len(d.lines) {
		return boundsError("insert line", index, len(d.lines)-1)
	}
	d.lines = slices.Insert(d.lines, index+1, line)
	return nil
}

// RemoveLine removes the line at index. The last remaining line cannot
// be removed.
func (d *Document) RemoveLine(index int) error {
	if err := d.checkRow("remove line", index); err != nil {
		return err
	}
	if len(d.lines) == 1 {
		return ErrLastLine
	}
	d.lines = slices.Delete(d.lines, index, index+1)
	return nil
}

// SplitLine moves line[column:] of row onto a new line inserted after it.
func (d *Document) SplitLine(row, column int) error {
	if err := d.checkRow("split", row); err != nil {
		return err
	}
	line := d.lines[row]
	tail, err := line.Slice(column)
	if err != nil {
		return err
	}
	next := NewLine()
	if len(tail) > 0 {
		next = NewLineFrom(tail)
	}
	if err := line.Truncate(column); err != nil {
		return err
	}
	return d.InsertLineAfter(row, next)
}

// JoinLineIntoPrevious appends the content of row onto row-1 and removes row.
func (d *Document) JoinLineIntoPrevious(row int) error {
	if err := d.checkRow("join", row); err != nil {
		return err
	}
	if row == 0 {
		return boundsError("join", row, len(d.lines)-1)
	}
	d.lines[row-1].Append(d.lines[row].Bytes())
	return d.RemoveLine(row)
}

// SwapAdjacent exchanges the lines at row and other. No character data
// is copied.
func (d *Document) SwapAdjacent(row, other int) error {
	if err := d.checkRow("swap", row); err != nil {
		return err
	}
	if err := d.checkRow("swap", other); err != nil {
		return err
	}
	if row-other != 1 && other-row != 1 {
		return ErrNotAdjacent
	}
	d.lines[row], d.lines[other] = d.lines[other], d.lines[row]
	return nil
}

// DeleteRange removes the text in [start, end). start must not come
// after end.
//
// Within one row the characters are removed directly. Across rows the
// start row is truncated at start.Column, the rows in between are
// removed, and the end row's remainder is appended to the start row
// before the end row itself is removed.
func (d *Document) DeleteRange(start, end Position) error {
	if err := d.checkRow("delete range", start.Row); err != nil {
		return err
	}
	if err := d.checkRow("delete range", end.Row); err != nil {
		return err
	}
	if start.After(end) {
		return boundsError("delete range", start.Row, end.Row)
	}

	if start.Row == end.Row {
		return d.lines[start.Row].DeleteRange(start.Column, end.Column)
	}

	first := d.lines[start.Row]
	last := d.lines[end.Row]
	if start.Column > first.Len() {
		return boundsError("delete range", start.Column, first.Len())
	}
	tail, err := last.Slice(end.Column)
	if err != nil {
		return err
	}

	if err := first.Truncate(start.Column); err != nil {
		return err
	}
	first.Append(tail)

	// Rows start.Row+1 through end.Row go away, end row included.
	d.lines = slices.Delete(d.lines, start.Row+1, end.Row+1)
	return nil
}
