package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/gridcolor/coloring"
)

// Mermaid writes a Mermaid flowchart of the colouring: one node per cell
// labelled with its colour, one undirected link per grid edge, and a
// classDef per colour that fills nodes with the palette entry.
//
// Node IDs are "n<row>_<col>". A non-empty title goes into front matter.
type Mermaid struct {
	// MarkConflicts adds a "conflict" class with a thick red stroke to
	// every conflicting node.
	MarkConflicts bool
}

// Render implements Renderer.
func (m *Mermaid) Render(w io.Writer, c *coloring.Coloring, title string) error {
	if c == nil {
		return fmt.Errorf("Mermaid.Render: %w", coloring.ErrNilColoring)
	}
	_, err := io.WriteString(w, m.generate(c, title))

	return err
}

func (m *Mermaid) generate(c *coloring.Coloring, title string) string {
	g := c.ToCoreGraph()
	var sb strings.Builder

	if title != "" {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("title: %s\n", strings.ReplaceAll(title, "\n", " ")))
		sb.WriteString("---\n")
	}
	sb.WriteString("graph LR\n")

	// vertices come back sorted by ID; restore row-major order
	verts := g.Vertices()
	index := make(map[string]int, len(verts))
	for _, id := range verts {
		v, _ := g.Vertex(id)
		index[id], _ = v.Metadata["index"].(int)
	}
	sort.SliceStable(verts, func(a, b int) bool { return index[verts[a]] < index[verts[b]] })

	byColor := make(map[int][]string)
	var conflicted []string
	for _, id := range verts {
		v, _ := g.Vertex(id)
		col, _ := v.Metadata["color"].(int)
		safeID := sanitizeMermaidID(id)
		sb.WriteString(fmt.Sprintf("    %s[\"%d\"]\n", safeID, col))
		byColor[col] = append(byColor[col], safeID)
		if m.MarkConflicts && c.InConflict(index[id]) {
			conflicted = append(conflicted, safeID)
		}
	}

	for _, e := range g.Edges() {
		sb.WriteString(fmt.Sprintf("    %s --- %s\n", sanitizeMermaidID(e.From), sanitizeMermaidID(e.To)))
	}

	colors := make([]int, 0, len(byColor))
	for col := range byColor {
		colors = append(colors, col)
	}
	sort.Ints(colors)

	sb.WriteString("\n    %% Colour classes\n")
	for _, col := range colors {
		if hex := hexFor(col); hex != "" {
			sb.WriteString(fmt.Sprintf("    classDef c%d fill:%s,color:#000;\n", col, hex))
		}
	}
	for _, col := range colors {
		if hexFor(col) != "" {
			sb.WriteString(fmt.Sprintf("    class %s c%d;\n", strings.Join(byColor[col], ","), col))
		}
	}
	if len(conflicted) > 0 {
		sb.WriteString("    classDef conflict stroke:#b91c1c,stroke-width:4px;\n")
		sb.WriteString(fmt.Sprintf("    class %s conflict;\n", strings.Join(conflicted, ",")))
	}

	return sb.String()
}

// sanitizeMermaidID maps a core vertex ID "r,c" to "nr_c".
func sanitizeMermaidID(id string) string {
	return "n" + strings.ReplaceAll(id, ",", "_")
}
