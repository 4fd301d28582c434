package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/gridcolor/coloring"
)

// conflictMark follows a conflicting cell when MarkConflicts is set.
const conflictMark = "*"

// Text prints the title, then one line per grid row with each cell's colour
// number right-aligned to the widest colour. Cells are separated by a space.
//
// Example (Ascii profile, MarkConflicts):
//
//	Random Color Distribution
//	1* 1* 2
//	2  3  1
type Text struct {
	// Profile controls escape sequences; termenv.Ascii disables them.
	Profile termenv.Profile
	// MarkConflicts appends conflictMark to every conflicting cell.
	MarkConflicts bool
}

// Render implements Renderer.
func (t *Text) Render(w io.Writer, c *coloring.Coloring, title string) error {
	if c == nil {
		return fmt.Errorf("Text.Render: %w", coloring.ErrNilColoring)
	}
	out := termenv.NewOutput(w, termenv.WithProfile(t.Profile))
	grid := c.Grid()

	width := 1
	for i := 0; i < c.Len(); i++ {
		if n := len(strconv.Itoa(c.Color(i))); n > width {
			width = n
		}
	}

	if _, err := fmt.Fprintln(out, out.String(title).Bold()); err != nil {
		return err
	}

	var sb strings.Builder
	for r := 0; r < grid.Rows; r++ {
		sb.Reset()
		for col := 0; col < grid.Cols; col++ {
			i := grid.Index(r, col)
			if col > 0 {
				sb.WriteByte(' ')
			}
			cell := fmt.Sprintf("%*d", width, c.Color(i))
			st := out.String(cell)
			if hex := hexFor(c.Color(i)); hex != "" {
				st = st.Foreground(out.Color(hex))
			}
			if t.MarkConflicts && c.InConflict(i) {
				st = st.Underline()
			}
			sb.WriteString(st.String())
			if t.MarkConflicts {
				if c.InConflict(i) {
					sb.WriteString(conflictMark)
				} else {
					sb.WriteByte(' ')
				}
			}
		}
		if _, err := fmt.Fprintln(out, strings.TrimRight(sb.String(), " ")); err != nil {
			return err
		}
	}

	return nil
}
