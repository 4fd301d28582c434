// Package render turns a coloring.Coloring into something a person can look
// at. Renderers are collaborators of the resolver: they only read the
// colouring and never change it.
//
// Available renderers:
//
//	Text    - one line per grid row, colours drawn with termenv
//	Mermaid - a Mermaid "graph LR" built from Coloring.ToCoreGraph
//	None    - discards everything
//
// New selects a renderer by name ("text", "mermaid", "none").
package render
