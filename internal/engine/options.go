package engine

import "github.com/dshills/xi/internal/renderer/viewport"

// Default window size used when no Sizer is configured.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Sizer reports the size of the visible window in character cells.
// The terminal backend satisfies it.
type Sizer interface {
	Size() (width, height int)
}

// FixedSize is a Sizer with a constant size.
type FixedSize struct {
	Width, Height int
}

// Size returns the fixed width and height.
func (s FixedSize) Size() (int, int) {
	return s.Width, s.Height
}

// Option configures an Engine during creation.
type Option func(*Engine)

// WithSizer sets the source of the window size.
func WithSizer(s Sizer) Option {
	return func(e *Engine) {
		if s != nil {
			e.screen = s
		}
	}
}

// WithSize uses a fixed window size.
func WithSize(width, height int) Option {
	return WithSizer(FixedSize{Width: width, Height: height})
}

// WithViewport sets the initial viewport.
func WithViewport(v *viewport.Viewport) Option {
	return func(e *Engine) {
		if v != nil {
			e.view = v
		}
	}
}
