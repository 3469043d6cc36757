package engine

// IsSpace reports whether b is whitespace: space, tab, newline,
// vertical tab, form feed or carriage return.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// separators holds every byte that IsSeparator accepts.
const separators = "./\\()\"'-:,;<>~!@#$%^&*|+=[]{}`?"

var separatorTable = func() (t [256]bool) {
	for i := 0; i < len(separators); i++ {
		t[separators[i]] = true
	}
	return t
}()

// IsSeparator reports whether b is punctuation that delimits words.
func IsSeparator(b byte) bool {
	return separatorTable[b]
}

// sameClass reports whether b belongs to the non-space class given by sep.
func sameClass(b byte, sep bool) bool {
	return !IsSpace(b) && IsSeparator(b) == sep
}

// PrevWordColumn returns the column where the word before col starts on
// line s. Whitespace immediately left of col is skipped, then the run of
// word or separator characters it ends on.
func PrevWordColumn(s []byte, col int) int {
	col = min(col, len(s))
	x := col - 1
	for x >= 0 && IsSpace(s[x]) {
		x--
	}
	if x < 0 {
		return 0
	}
	sep := IsSeparator(s[x])
	for x >= 0 && sameClass(s[x], sep) {
		x--
	}
	return x + 1
}

// NextWordColumn returns the column the next-word motion reaches from
// col on line s. From whitespace it stops at the first non-space
// character. From a word or separator character it stops at the end of
// that run.
func NextWordColumn(s []byte, col int) int {
	n := len(s)
	if col >= n {
		return n
	}
	x := max(col, 0)
	if IsSpace(s[x]) {
		for x < n && IsSpace(s[x]) {
			x++
		}
		return x
	}
	sep := IsSeparator(s[x])
	for x < n && sameClass(s[x], sep) {
		x++
	}
	return x
}

// MovePrevWord moves to the start of the previous word. At column 0 the
// search continues from the end of the previous line.
func (e *Engine) MovePrevWord() {
	if e.cur.Column == 0 {
		if e.cur.Row == 0 {
			return
		}
		e.cur.Row--
		e.cur.Column = e.lineLen()
	}
	e.cur.SetColumn(PrevWordColumn(e.line().Bytes(), e.cur.Column))
	e.correctScroll()
}

// MoveNextWord moves to the end of the current word, or past the current
// run of whitespace. At the end of a line the search continues from the
// start of the next line.
func (e *Engine) MoveNextWord() {
	if e.cur.Column >= e.lineLen() {
		if e.cur.Row == e.doc.LastRow() {
			return
		}
		e.cur.Row++
		e.cur.Column = 0
	}
	e.cur.SetColumn(NextWordColumn(e.line().Bytes(), e.cur.Column))
	e.correctScroll()
}
