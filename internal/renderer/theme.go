package renderer

import (
	"fmt"

	"github.com/dshills/xi/internal/renderer/core"
)

// Theme holds the styles used to draw text.
type Theme struct {
	Text      core.Style
	Selection core.Style
}

// DefaultTheme draws text in the terminal's default colors and the
// selection as black on white.
func DefaultTheme() Theme {
	return Theme{
		Text:      core.DefaultStyle(),
		Selection: core.NewStyle(core.ColorBlack, core.ColorWhite),
	}
}

// ThemeColors names the four theme colors, each a color name or hex
// value as accepted by core.ParseColor.
type ThemeColors struct {
	TextFg      string
	TextBg      string
	SelectionFg string
	SelectionBg string
}

// NewTheme builds a theme from color specifications.
func NewTheme(c ThemeColors) (Theme, error) {
	var t Theme
	fields := []struct {
		name string
		spec string
		dst  *core.Color
	}{
		{"text foreground", c.TextFg, &t.Text.Foreground},
		{"text background", c.TextBg, &t.Text.Background},
		{"selection foreground", c.SelectionFg, &t.Selection.Foreground},
		{"selection background", c.SelectionBg, &t.Selection.Background},
	}
	for _, f := range fields {
		color, err := core.ParseColor(f.spec)
		if err != nil {
			return Theme{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = color
	}
	return t, nil
}
