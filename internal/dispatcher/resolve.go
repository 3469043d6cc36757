package dispatcher

import "github.com/dshills/xi/internal/input"

// Resolution tables, one per precedence level.
var (
	ctrlArrows = map[input.Key]Command{
		input.KeyLeft:  move(MotionLineStart),
		input.KeyRight: move(MotionLineEnd),
		input.KeyUp:    move(MotionFileStart),
		input.KeyDown:  move(MotionFileEnd),
	}

	altArrows = map[input.Key]Command{
		input.KeyLeft:  move(MotionPrevWord),
		input.KeyRight: move(MotionNextWord),
		input.KeyUp:    edit(EditShiftUp),
		input.KeyDown:  edit(EditShiftDown),
	}

	baseKeys = map[input.Key]Command{
		input.KeyLeft:      move(MotionLeft),
		input.KeyRight:     move(MotionRight),
		input.KeyUp:        move(MotionUp),
		input.KeyDown:      move(MotionDown),
		input.KeyEnter:     edit(EditNewLine),
		input.KeyBackspace: edit(EditBackspace),
		input.KeyQuit:      {Kind: KindQuit},
		input.KeySave:      {Kind: KindSave},
	}

	collapseEdges = map[input.Key]Edge{
		input.KeyLeft:  EdgeStart,
		input.KeyUp:    EdgeStart,
		input.KeyRight: EdgeEnd,
		input.KeyDown:  EdgeEnd,
	}
)

// Resolve maps ev to a command. selecting reports whether a selection is
// currently active.
func Resolve(ev input.Event, selecting bool) Command {
	switch ev.Kind {
	case input.KindChar:
		if !ev.Insertable() {
			return Command{}
		}
		return insert(byte(ev.Char))
	case input.KindKey:
		if ev.Key.IsArrow() {
			return resolveArrow(ev.Key, ev.Mod, selecting)
		}
		if cmd, ok := baseKeys[ev.Key]; ok {
			return cmd
		}
	}
	return Command{}
}

func resolveArrow(k input.Key, mod input.Modifier, selecting bool) Command {
	if mod.Has(input.ModShift) {
		return resolveArrow(k, mod.Without(input.ModShift), false).extend()
	}
	if selecting {
		return collapse(collapseEdges[k])
	}
	if mod.Has(input.ModCtrl) {
		return ctrlArrows[k]
	}
	if mod.Has(input.ModAlt) {
		return altArrows[k]
	}
	return baseKeys[k]
}
