package input

import "strings"

// Key is a logical key the editor reacts to.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Arrow keys
	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	// Editing keys
	KeyEnter
	KeyBackspace

	// Editor commands
	KeyQuit
	KeySave
)

var keyNames = [...]string{
	KeyNone:      "None",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyEnter:     "Enter",
	KeyBackspace: "Backspace",
	KeyQuit:      "Quit",
	KeySave:      "Save",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Unknown"
}

// IsArrow returns true for the four arrow keys.
func (k Key) IsArrow() bool {
	return k >= KeyLeft && k <= KeyDown
}

var keyAliases = map[string]Key{
	"left":      KeyLeft,
	"right":     KeyRight,
	"up":        KeyUp,
	"down":      KeyDown,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"cr":        KeyEnter,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"quit":      KeyQuit,
	"save":      KeySave,
}

// KeyFromName returns the key with the given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	return keyAliases[strings.ToLower(strings.TrimSpace(name))]
}
