package buffer

// MinLineCapacity is the smallest storage size a Line allocates.
const MinLineCapacity = 16

// Line is a growable sequence of single-byte characters.
// The backing slice always has len == capacity; only the first Len bytes
// are valid.
type Line struct {
	chars  []byte
	length int
}

// NewLine creates an empty line with the minimum capacity.
func NewLine() *Line {
	return &Line{chars: make([]byte, MinLineCapacity)}
}

// NewLineFrom creates a line holding a copy of b.
// The capacity is the next power of two >= len(b), at least MinLineCapacity.
func NewLineFrom(b []byte) *Line {
	l := &Line{
		chars:  make([]byte, capacityFor(len(b))),
		length: len(b),
	}
	copy(l.chars, b)
	return l
}

// NewLineFromString creates a line holding the bytes of s.
func NewLineFromString(s string) *Line {
	return NewLineFrom([]byte(s))
}

// capacityFor returns the next power of two >= n, never below MinLineCapacity.
func capacityFor(n int) int {
	c := MinLineCapacity
	for c < n {
		c <<= 1
	}
	return c
}

// Len returns the number of valid characters.
func (l *Line) Len() int {
	return l.length
}

// Cap returns the allocated storage size.
func (l *Line) Cap() int {
	return len(l.chars)
}

// At returns the character at index i. i must be in [0, Len()).
func (l *Line) At(i int) byte {
	return l.chars[:l.length][i]
}

// Bytes returns the valid characters. The slice aliases the line's
// storage and is only valid until the next mutation.
func (l *Line) Bytes() []byte {
	return l.chars[:l.length]
}

// String returns a copy of the line's content.
func (l *Line) String() string {
	return string(l.chars[:l.length])
}

// EnsureCapacity grows storage until additional more characters fit.
// Capacity doubles on every step and never shrinks.
func (l *Line) EnsureCapacity(additional int) {
	need := l.length + additional
	if need <= len(l.chars) {
		return
	}
	c := len(l.chars)
	if c < MinLineCapacity {
		c = MinLineCapacity
	}
	for c < need {
		c *= 2
	}
	grown := make([]byte, c)
	copy(grown, l.chars[:l.length])
	l.chars = grown
}

// InsertAt inserts ch at index, shifting [index, Len()) right by one.
func (l *Line) InsertAt(index int, ch byte) error {
	if index < 0 || index > l.length {
		return boundsError("insert", index, l.length)
	}
	l.EnsureCapacity(1)
	copy(l.chars[index+1:l.length+1], l.chars[index:l.length])
	l.chars[index] = ch
	l.length++
	return nil
}

// DeleteRange removes the characters in [start, end).
func (l *Line) DeleteRange(start, end int) error {
	if start < 0 || start > end {
		return boundsError("delete", start, end)
	}
	if end > l.length {
		return boundsError("delete", end, l.length)
	}
	copy(l.chars[start:], l.chars[end:l.length])
	l.length -= end - start
	return nil
}

// Append copies b onto the end of the line.
func (l *Line) Append(b []byte) {
	if len(b) == 0 {
		return
	}
	l.EnsureCapacity(len(b))
	copy(l.chars[l.length:], b)
	l.length += len(b)
}

// Truncate shortens the line to n characters. Capacity is unchanged.
func (l *Line) Truncate(n int) error {
	if n < 0 || n > l.length {
		return boundsError("truncate", n, l.length)
	}
	l.length = n
	return nil
}

// Slice returns a copy of the characters from index from to the end.
func (l *Line) Slice(from int) ([]byte, error) {
	if from < 0 || from > l.length {
		return nil, boundsError("slice", from, l.length)
	}
	out := make([]byte, l.length-from)
	copy(out, l.chars[from:l.length])
	return out, nil
}
