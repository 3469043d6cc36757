package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind distinguishes key events from character events.
type Kind uint8

const (
	// KindNone is the zero Kind; such events are ignored.
	KindNone Kind = iota
	// KindKey is a logical key with modifiers.
	KindKey
	// KindChar is a character to insert.
	KindChar
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindChar:
		return "char"
	default:
		return "none"
	}
}

// MaxChar is the largest character value that can be inserted. Characters
// above it are dropped by the dispatcher.
const MaxChar = 0xFF

// Event is one unit of user input.
type Event struct {
	Kind Kind

	// Key and Mod are set for KindKey events.
	Key Key
	Mod Modifier

	// Char is set for KindChar events.
	Char rune
}

// KeyEvent creates a key event.
func KeyEvent(k Key, mod Modifier) Event {
	return Event{Kind: KindKey, Key: k, Mod: mod}
}

// CharEvent creates a character event.
func CharEvent(r rune) Event {
	return Event{Kind: KindChar, Char: r}
}

// IsKey returns true if the event is a key event for k.
func (e Event) IsKey(k Key) bool {
	return e.Kind == KindKey && e.Key == k
}

// Insertable returns true for character events the editor can store.
func (e Event) Insertable() bool {
	return e.Kind == KindChar && e.Char > 0 && e.Char <= MaxChar
}

// String returns the canonical form accepted by Parse.
func (e Event) String() string {
	switch e.Kind {
	case KindKey:
		if e.Mod.IsEmpty() {
			return e.Key.String()
		}
		return e.Mod.String() + "+" + e.Key.String()
	case KindChar:
		if e.Char == ' ' {
			return "Space"
		}
		if e.Char == '+' {
			return "Plus"
		}
		return string(e.Char)
	default:
		return "None"
	}
}

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification into an Event.
//
// Supported formats:
//   - Single character: "a", "Z", "@"; "Space" and "Plus" name those characters
//   - Key names: "Left", "Enter", "Backspace", "Quit", "Save"
//   - With modifiers: "Shift+Left", "Ctrl+Alt+Down"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	parts := strings.Split(spec, "+")
	last := parts[len(parts)-1]
	if last == "" {
		return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}

	var mod Modifier
	for _, p := range parts[:len(parts)-1] {
		m := ModifierFromName(p)
		if m == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mod = mod.With(m)
	}

	if k := KeyFromName(last); k != KeyNone {
		return KeyEvent(k, mod), nil
	}
	if mod != ModNone {
		return Event{}, fmt.Errorf("%w: modifiers apply to keys only, got %q", ErrInvalidSpec, spec)
	}

	switch strings.ToLower(last) {
	case "space":
		return CharEvent(' '), nil
	case "plus":
		return CharEvent('+'), nil
	}
	r, size := utf8.DecodeRuneInString(last)
	if r == utf8.RuneError || size != len(last) {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, last)
	}
	return CharEvent(r), nil
}

// MustParse is like Parse but panics on error.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return ev
}
