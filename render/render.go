package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/gridcolor/coloring"
)

// ErrUnknownRenderer is returned by New for an unsupported renderer name.
var ErrUnknownRenderer = errors.New("render: unknown renderer")

// Renderer writes a view of c titled title to w.
type Renderer interface {
	Render(w io.Writer, c *coloring.Coloring, title string) error
}

// Renderer names accepted by New.
const (
	NameText    = "text"
	NameMermaid = "mermaid"
	NameNone    = "none"
)

// palette holds the hex colours assigned to colour 1, 2, ... in turn.
var palette = []string{
	"#ef4444", // red
	"#3b82f6", // blue
	"#22c55e", // green
	"#eab308", // yellow
	"#a855f7", // purple
	"#f97316", // orange
	"#14b8a6", // teal
	"#ec4899", // pink
}

// hexFor returns the palette entry for colour col, or "" when col is unassigned.
func hexFor(col int) string {
	if col < 1 {
		return ""
	}

	return palette[(col-1)%len(palette)]
}

// Option customises renderers built by New.
type Option func(*options)

type options struct {
	profile       termenv.Profile
	markConflicts bool
}

// WithProfile fixes the termenv colour profile used by Text.
// termenv.Ascii yields plain, escape-free output.
func WithProfile(p termenv.Profile) Option {
	return func(o *options) { o.profile = p }
}

// WithConflictMarks toggles marking of conflicting cells (Text) or nodes (Mermaid).
func WithConflictMarks(on bool) Option {
	return func(o *options) { o.markConflicts = on }
}

// New returns the renderer registered under name (case-insensitive).
// Without WithProfile the Text renderer detects the profile of stdout.
func New(name string, opts ...Option) (Renderer, error) {
	o := options{profile: termenv.EnvColorProfile()}
	for _, opt := range opts {
		opt(&o)
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameText, "":
		return &Text{Profile: o.profile, MarkConflicts: o.markConflicts}, nil
	case NameMermaid:
		return &Mermaid{MarkConflicts: o.markConflicts}, nil
	case NameNone:
		return None{}, nil
	default:
		return nil, fmt.Errorf("New: %q: %w", name, ErrUnknownRenderer)
	}
}

// None discards all output.
type None struct{}

// Render implements Renderer and does nothing.
func (None) Render(io.Writer, *coloring.Coloring, string) error { return nil }
