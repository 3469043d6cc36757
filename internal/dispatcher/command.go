package dispatcher

import (
	"fmt"
	"strings"
)

// Kind is the variant of a Command.
type Kind uint8

const (
	// KindNone does nothing.
	KindNone Kind = iota
	// KindMove moves the cursor.
	KindMove
	// KindCollapse ends the selection at one of its edges.
	KindCollapse
	// KindEdit changes the document structure.
	KindEdit
	// KindInsert inserts Command.Char.
	KindInsert
	// KindQuit stops the editor.
	KindQuit
	// KindSave writes the document to its file.
	KindSave
)

var kindNames = [...]string{
	KindNone:     "none",
	KindMove:     "move",
	KindCollapse: "collapse",
	KindEdit:     "edit",
	KindInsert:   "insert",
	KindQuit:     "quit",
	KindSave:     "save",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Motion is a cursor movement.
type Motion uint8

const (
	MotionNone Motion = iota
	MotionLeft
	MotionRight
	MotionUp
	MotionDown
	MotionLineStart
	MotionLineEnd
	MotionFileStart
	MotionFileEnd
	MotionPrevWord
	MotionNextWord
)

var motionNames = [...]string{
	MotionNone:      "none",
	MotionLeft:      "left",
	MotionRight:     "right",
	MotionUp:        "up",
	MotionDown:      "down",
	MotionLineStart: "lineStart",
	MotionLineEnd:   "lineEnd",
	MotionFileStart: "fileStart",
	MotionFileEnd:   "fileEnd",
	MotionPrevWord:  "prevWord",
	MotionNextWord:  "nextWord",
}

func (m Motion) String() string {
	if int(m) < len(motionNames) {
		return motionNames[m]
	}
	return "unknown"
}

// Edit is a structural edit.
type Edit uint8

const (
	EditNone Edit = iota
	EditNewLine
	EditBackspace
	EditShiftUp
	EditShiftDown
)

var editNames = [...]string{
	EditNone:      "none",
	EditNewLine:   "newLine",
	EditBackspace: "backspace",
	EditShiftUp:   "shiftUp",
	EditShiftDown: "shiftDown",
}

func (e Edit) String() string {
	if int(e) < len(editNames) {
		return editNames[e]
	}
	return "unknown"
}

// Edge selects which end of a selection a collapse moves to.
type Edge uint8

const (
	EdgeStart Edge = iota
	EdgeEnd
)

func (e Edge) String() string {
	if e == EdgeEnd {
		return "end"
	}
	return "start"
}

// Command is one editor command. Only the fields relevant to Kind are
// meaningful.
type Command struct {
	Kind   Kind
	Motion Motion // KindMove
	Edit   Edit   // KindEdit
	Edge   Edge   // KindCollapse
	Char   byte   // KindInsert

	// Extend starts a selection at the cursor before a move or edit.
	Extend bool
}

// Name returns a stable identifier such as "move.nextWord" used for
// metrics and logging.
func (c Command) Name() string {
	switch c.Kind {
	case KindMove:
		return "move." + c.Motion.String()
	case KindCollapse:
		return "collapse." + c.Edge.String()
	case KindEdit:
		return "edit." + c.Edit.String()
	default:
		return c.Kind.String()
	}
}

// String returns a representation including arguments.
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.Name())
	if c.Kind == KindInsert {
		fmt.Fprintf(&b, "(%q)", c.Char)
	}
	if c.Extend {
		b.WriteString("+extend")
	}
	return b.String()
}

// Constructors used by the resolution tables.

func move(m Motion) Command { return Command{Kind: KindMove, Motion: m} }

func edit(e Edit) Command { return Command{Kind: KindEdit, Edit: e} }

func collapse(e Edge) Command { return Command{Kind: KindCollapse, Edge: e} }

func insert(ch byte) Command { return Command{Kind: KindInsert, Char: ch} }

func (c Command) extend() Command {
	c.Extend = true
	return c
}
