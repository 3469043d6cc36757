package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/xi/internal/engine/buffer"
)

func newTestEngine(lines ...string) *Engine {
	return New(buffer.NewDocumentFromStrings(lines...), WithSize(80, 24))
}

func assertLines(t *testing.T, e *Engine, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, e.Document().Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func assertPos(t *testing.T, e *Engine, col, row int) {
	t.Helper()
	if got := e.Position(); got != buffer.Pos(col, row) {
		t.Errorf("expected cursor at (%d,%d), got %s", col, row, got)
	}
}

func assertValid(t *testing.T, e *Engine) {
	t.Helper()
	if err := e.CheckInvariants(); err != nil {
		t.Error(err)
	}
}

func TestNewDefaults(t *testing.T) {
	e := New(nil)

	if e.Document().LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", e.Document().LineCount())
	}
	assertPos(t, e, 0, 0)
	if !e.Running() {
		t.Error("new engine should be running")
	}
	if w, h := e.Size(); w != DefaultWidth || h != DefaultHeight {
		t.Errorf("expected default size %dx%d, got %dx%d", DefaultWidth, DefaultHeight, w, h)
	}
	assertValid(t, e)
}

func TestQuit(t *testing.T) {
	e := newTestEngine("x")
	e.Quit()
	if e.Running() {
		t.Error("Quit should stop the engine")
	}
}

// Movement

func TestMoveLeftRightWrap(t *testing.T) {
	e := newTestEngine("ab", "c")

	e.MoveLeft()
	assertPos(t, e, 0, 0)

	e.MoveRight()
	e.MoveRight()
	assertPos(t, e, 2, 0)

	e.MoveRight()
	assertPos(t, e, 0, 1)

	e.MoveLeft()
	assertPos(t, e, 2, 0)

	e.MoveEndOfFile()
	e.MoveRight()
	assertPos(t, e, 1, 1)
	assertValid(t, e)
}

func TestMoveVerticalRemembersColumn(t *testing.T) {
	e := newTestEngine("hello world", "ab", "0123456789")
	e.MoveTo(buffer.Pos(8, 0))

	e.MoveDown()
	assertPos(t, e, 2, 1)

	e.MoveDown()
	assertPos(t, e, 8, 2)

	e.MoveUp()
	e.MoveUp()
	assertPos(t, e, 8, 0)

	// A horizontal move forgets the column.
	e.MoveDown()
	e.MoveLeft()
	e.MoveDown()
	assertPos(t, e, 1, 2)
	assertValid(t, e)
}

func TestMoveVerticalBoundaries(t *testing.T) {
	e := newTestEngine("a", "b")

	e.MoveUp()
	assertPos(t, e, 0, 0)

	e.MoveDown()
	e.MoveDown()
	assertPos(t, e, 0, 1)
}

func TestMoveLineAndFileBoundaries(t *testing.T) {
	e := newTestEngine("first", "second line")
	e.MoveTo(buffer.Pos(2, 1))

	e.MoveEndOfLine()
	assertPos(t, e, 11, 1)

	e.MoveStartOfLine()
	assertPos(t, e, 0, 1)

	e.MoveStartOfFile()
	assertPos(t, e, 0, 0)

	e.MoveEndOfFile()
	assertPos(t, e, 11, 1)
}

func TestMoveToClamps(t *testing.T) {
	e := newTestEngine("abc", "de")

	e.MoveTo(buffer.Pos(100, 100))
	assertPos(t, e, 2, 1)

	e.MoveTo(buffer.Pos(-3, -1))
	assertPos(t, e, 0, 0)
}

// Words

func TestNextWordScenario(t *testing.T) {
	e := newTestEngine("hello world")

	for i, want := range []int{5, 6, 11, 11} {
		e.MoveNextWord()
		if e.Position().Column != want {
			t.Errorf("move %d: expected column %d, got %d", i+1, want, e.Position().Column)
		}
	}
}

func TestPrevWord(t *testing.T) {
	e := newTestEngine("hello world")
	e.MoveEndOfLine()

	e.MovePrevWord()
	assertPos(t, e, 6, 0)

	e.MovePrevWord()
	assertPos(t, e, 0, 0)

	e.MovePrevWord()
	assertPos(t, e, 0, 0)
}

func TestWordMotionCrossesLines(t *testing.T) {
	e := newTestEngine("foo bar", "  baz")

	e.MoveEndOfLine()
	e.MoveNextWord()
	assertPos(t, e, 2, 1)

	e.MoveStartOfLine()
	e.MovePrevWord()
	assertPos(t, e, 4, 0)
}

func TestWordColumns(t *testing.T) {
	tests := []struct {
		name string
		line string
		col  int
		prev int
		next int
	}{
		{"separator run", "foo.bar", 3, 0, 4},
		{"after separators", "a+=b", 3, 1, 4},
		{"inside word", "alpha beta", 2, 0, 5},
		{"whitespace", "a \t b", 2, 0, 4},
		{"empty line", "", 0, 0, 0},
		{"question mark", "x?y", 1, 0, 2},
		{"column past end", "ab", 9, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := []byte(tt.line)
			if got := PrevWordColumn(s, tt.col); got != tt.prev {
				t.Errorf("PrevWordColumn(%q, %d) = %d, want %d", tt.line, tt.col, got, tt.prev)
			}
			if got := NextWordColumn(s, tt.col); got != tt.next {
				t.Errorf("NextWordColumn(%q, %d) = %d, want %d", tt.line, tt.col, got, tt.next)
			}
		})
	}
}

func TestCharacterClasses(t *testing.T) {
	for _, b := range []byte(" \t\n\v\f\r") {
		if !IsSpace(b) {
			t.Errorf("%q should be whitespace", b)
		}
	}
	for _, b := range []byte("./\\()\"'-:,;<>~!@#$%^&*|+=[]{}`?") {
		if !IsSeparator(b) {
			t.Errorf("%q should be a separator", b)
		}
	}
	for _, b := range []byte("aZ09_ ") {
		if IsSeparator(b) {
			t.Errorf("%q should not be a separator", b)
		}
	}
}

// Selection

func TestSelectionLifecycle(t *testing.T) {
	e := newTestEngine("hello")
	e.MoveRight()

	e.StartSelection()
	e.MoveRight()
	e.MoveRight()

	if !e.HasSelection() {
		t.Fatal("expected an active selection")
	}
	want := buffer.NewRange(buffer.Pos(1, 0), buffer.Pos(3, 0))
	if got := e.SelectionRange(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if !e.InSelection(2, 0) || e.InSelection(3, 0) {
		t.Error("InSelection should cover [1,3)")
	}

	e.EndSelection()
	if e.HasSelection() {
		t.Error("EndSelection should clear the selection")
	}
	if got := e.SelectionRange(); got != buffer.EmptyRange {
		t.Errorf("expected the empty range, got %s", got)
	}
}

func TestCollapseSelection(t *testing.T) {
	e := newTestEngine("one", "two")
	e.MoveTo(buffer.Pos(1, 1))
	e.StartSelection()
	e.MoveTo(buffer.Pos(2, 0))

	e.CollapseSelectionStart()
	assertPos(t, e, 2, 0)
	if e.HasSelection() {
		t.Error("collapse should clear the selection")
	}

	e.StartSelection()
	e.MoveTo(buffer.Pos(1, 1))
	e.CollapseSelectionEnd()
	assertPos(t, e, 1, 1)

	// Without a selection, collapse does nothing.
	e.CollapseSelectionStart()
	assertPos(t, e, 1, 1)
}

func TestClearDegenerateSelection(t *testing.T) {
	e := newTestEngine("abc")
	e.StartSelection()
	e.MoveRight()
	if e.ClearDegenerateSelection() {
		t.Error("non-empty selection should survive")
	}
	e.MoveLeft()
	if !e.ClearDegenerateSelection() {
		t.Error("selection back at its anchor should be cleared")
	}
	if e.HasSelection() {
		t.Error("selection should be inactive")
	}
}

// Editing

func TestInsertChar(t *testing.T) {
	e := newTestEngine("ac")
	e.MoveRight()
	e.InsertChar('b')

	assertLines(t, e, "abc")
	assertPos(t, e, 2, 0)
	assertValid(t, e)
}

func TestInsertCharReplacesSelection(t *testing.T) {
	e := newTestEngine("hello")
	e.MoveRight()
	e.StartSelection()
	e.MoveEndOfLine()
	e.InsertChar('i')

	assertLines(t, e, "hi")
	assertPos(t, e, 2, 0)
	if e.HasSelection() {
		t.Error("insert should consume the selection")
	}
}

func TestNewLineAtEnd(t *testing.T) {
	e := newTestEngine("ab", "cd")
	e.MoveEndOfLine()
	e.NewLine()

	assertLines(t, e, "ab", "", "cd")
	assertPos(t, e, 0, 1)
	assertValid(t, e)
}

func TestNewLineSplits(t *testing.T) {
	e := newTestEngine("abcd")
	e.MoveTo(buffer.Pos(1, 0))
	e.NewLine()

	assertLines(t, e, "a", "bcd")
	assertPos(t, e, 0, 1)
}

func TestNewLineDeletesSelection(t *testing.T) {
	e := newTestEngine("abcdef")
	e.MoveTo(buffer.Pos(1, 0))
	e.StartSelection()
	e.MoveTo(buffer.Pos(4, 0))
	e.NewLine()

	assertLines(t, e, "a", "ef")
	assertPos(t, e, 0, 1)
}

func TestBackspaceJoinsLines(t *testing.T) {
	e := newTestEngine("abc", "def")
	e.MoveDown()
	e.Backspace()

	assertLines(t, e, "abcdef")
	assertPos(t, e, 3, 0)
	assertValid(t, e)
}

func TestBackspaceDeletesChar(t *testing.T) {
	e := newTestEngine("abc")
	e.MoveEndOfLine()
	e.Backspace()

	assertLines(t, e, "ab")
	assertPos(t, e, 2, 0)
}

func TestBackspaceAtStartIsNoop(t *testing.T) {
	e := newTestEngine("abc", "d")
	e.Backspace()

	assertLines(t, e, "abc", "d")
	assertPos(t, e, 0, 0)
}

func TestBackspaceDeletesSelection(t *testing.T) {
	e := newTestEngine("hello")
	e.MoveRight()
	e.StartSelection()
	e.MoveRight()
	e.MoveRight()
	e.Backspace()

	assertLines(t, e, "hlo")
	assertPos(t, e, 1, 0)
	if e.HasSelection() {
		t.Error("selection should be inactive after delete")
	}
}

func TestDeleteRangeMultiRow(t *testing.T) {
	e := newTestEngine("alpha", "beta", "gamma", "delta")
	e.MoveEndOfFile()
	e.DeleteRange(buffer.Pos(2, 0), buffer.Pos(3, 2))

	assertLines(t, e, "alma", "delta")
	assertPos(t, e, 2, 0)
	assertValid(t, e)
}

func TestDeleteSelectionBackward(t *testing.T) {
	e := newTestEngine("one", "two", "three")
	e.MoveTo(buffer.Pos(2, 2))
	e.StartSelection()
	e.MoveTo(buffer.Pos(1, 0))

	if !e.DeleteSelection() {
		t.Fatal("expected a selection to delete")
	}
	assertLines(t, e, "oree")
	assertPos(t, e, 1, 0)

	if e.DeleteSelection() {
		t.Error("second delete should find no selection")
	}
}

func TestDeleteRangeContractViolation(t *testing.T) {
	e := newTestEngine("abc")

	defer func() {
		r := recover()
		ce, ok := r.(*ContractError)
		if !ok {
			t.Fatalf("expected *ContractError panic, got %v", r)
		}
		if !errors.Is(ce, buffer.ErrIndexOutOfRange) {
			t.Errorf("expected ErrIndexOutOfRange, got %v", ce.Err)
		}
	}()
	e.DeleteRange(buffer.Pos(0, 0), buffer.Pos(0, 5))
}

func TestShiftLines(t *testing.T) {
	e := newTestEngine("first", "second")
	e.MoveRight()

	e.ShiftLineDown()
	assertLines(t, e, "second", "first")
	assertPos(t, e, 1, 1)

	e.ShiftLineDown()
	assertLines(t, e, "second", "first")
	assertPos(t, e, 1, 1)

	e.ShiftLineUp()
	assertLines(t, e, "first", "second")
	assertPos(t, e, 1, 0)

	e.ShiftLineUp()
	assertPos(t, e, 1, 0)
	assertValid(t, e)
}

func TestShiftLinesCarrySelectionAnchor(t *testing.T) {
	e := newTestEngine("ab", "cdef")
	e.MoveEndOfLine()
	e.StartSelection()
	e.MoveDown()

	e.ShiftLineUp()
	assertLines(t, e, "cdef", "ab")
	assertPos(t, e, 2, 0)
	sel := e.Selection()
	if anchor, ok := sel.Anchor(); !ok || anchor != buffer.Pos(2, 1) {
		t.Errorf("expected anchor at (2,1), got %s active=%v", anchor, ok)
	}
	assertValid(t, e)

	e.ShiftLineDown()
	assertLines(t, e, "ab", "cdef")
	sel = e.Selection()
	if anchor, _ := sel.Anchor(); anchor != buffer.Pos(2, 0) {
		t.Errorf("expected anchor back at (2,0), got %s", anchor)
	}
	assertValid(t, e)
}

func TestShiftLineWithAnchorOnSameLine(t *testing.T) {
	e := newTestEngine("hello", "x")
	e.MoveEndOfLine()
	e.StartSelection()

	e.ShiftLineDown()
	assertLines(t, e, "x", "hello")
	sel := e.Selection()
	if anchor, _ := sel.Anchor(); anchor != buffer.Pos(5, 1) {
		t.Errorf("anchor should follow its line, got %s", anchor)
	}
	if !e.ClearDegenerateSelection() {
		t.Error("anchor at the cursor should be degenerate")
	}
	e.InsertChar('z')
	assertLines(t, e, "x", "helloz")
	assertValid(t, e)
}

// Viewport

func TestViewportFollowsCursor(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "line"
	}
	e := New(buffer.NewDocumentFromStrings(lines...), WithSize(3, 10))

	for i := 0; i < 12; i++ {
		e.MoveDown()
	}
	if v := e.Viewport(); v.ScrollY != 3 {
		t.Errorf("expected ScrollY 3, got %d", v.ScrollY)
	}

	e.MoveEndOfLine()
	if v := e.Viewport(); v.ScrollX != 2 {
		t.Errorf("expected ScrollX 2, got %d", v.ScrollX)
	}

	e.MoveStartOfFile()
	if v := e.Viewport(); v.ScrollX != 0 || v.ScrollY != 0 {
		t.Errorf("expected origin, got (%d,%d)", v.ScrollX, v.ScrollY)
	}
	assertValid(t, e)
}

type resizable struct{ w, h int }

func (r *resizable) Size() (int, int) { return r.w, r.h }

func TestResizeRecorrects(t *testing.T) {
	screen := &resizable{w: 80, h: 24}
	e := New(buffer.NewDocumentFromStrings("a", "b", "c", "d", "e", "f"), WithSizer(screen))
	e.MoveEndOfFile()

	screen.h = 2
	e.Resize()
	if v := e.Viewport(); v.ScrollY != 4 {
		t.Errorf("expected ScrollY 4, got %d", v.ScrollY)
	}
	assertValid(t, e)
}

// Invariants

func TestInvariantsHoldUnderMixedOperations(t *testing.T) {
	e := New(buffer.NewDocumentFromStrings("func main() {", "\tprintln(\"hi\")", "}"), WithSize(8, 2))

	extend := func(move func()) func() {
		return func() {
			e.StartSelection()
			move()
		}
	}
	ops := []func(){
		e.MoveDown, e.MoveNextWord, extend(e.MoveDown),
		extend(e.MoveEndOfLine), e.Backspace, e.NewLine, e.MovePrevWord,
		func() { e.InsertChar('x') }, e.ShiftLineUp, e.MoveEndOfFile,
		extend(e.MoveStartOfFile), func() { e.DeleteSelection() }, e.MoveRight,
		e.ShiftLineDown, e.MoveUp, e.Backspace, e.NewLine, e.NewLine,
		extend(e.MovePrevWord), e.CollapseSelectionEnd,
		extend(e.ShiftLineDown), func() { e.InsertChar('y') },
		extend(e.MoveEndOfLine), extend(e.ShiftLineUp), e.Backspace,
		extend(e.MoveUp), extend(e.ShiftLineDown), e.NewLine,
	}
	for i, op := range ops {
		op()
		e.ClearDegenerateSelection()
		if err := e.CheckInvariants(); err != nil {
			t.Fatalf("after op %d: %v", i, err)
		}
	}
}

func TestCheckInvariantsReportsDegenerateSelection(t *testing.T) {
	e := newTestEngine("abc")
	e.StartSelection()

	if err := e.CheckInvariants(); !errors.Is(err, ErrInvariant) {
		t.Errorf("expected ErrInvariant, got %v", err)
	}
}

func TestCheckInvariantsReportsAnchorOutsideDocument(t *testing.T) {
	tests := []struct {
		name   string
		anchor Position
	}{
		{"row past end", buffer.Pos(0, 2)},
		{"column past line end", buffer.Pos(4, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine("hello", "x")
			e.StartSelection()
			e.sel.MoveAnchor(tt.anchor)

			if err := e.CheckInvariants(); !errors.Is(err, ErrInvariant) {
				t.Errorf("expected ErrInvariant, got %v", err)
			}
		})
	}
}
