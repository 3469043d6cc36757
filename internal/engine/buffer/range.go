package buffer

import "fmt"

// Range is a span of text between two positions.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start Position
	End   Position
}

// EmptyRange is the sentinel returned when there is nothing selected.
var EmptyRange = Range{
	Start: Position{Column: -1, Row: -1},
	End:   Position{Column: -1, Row: -1},
}

// NewRange creates a new Range from start and end positions.
func NewRange(start, end Position) Range {
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s:%s)", r.Start, r.End)
}

// IsEmpty returns true for the sentinel range and for ranges where
// start equals end.
func (r Range) IsEmpty() bool {
	return r == EmptyRange || r.Start == r.End
}

// IsSingleLine returns true if the range spans only one row.
func (r Range) IsSingleLine() bool {
	return r.Start.Row == r.End.Row
}
