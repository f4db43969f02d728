// Package render turns catalog data into terminal output: styled rule
// cards, listings, and the category table, with a plain mode for pipes
// and scripts.
package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer renders catalog content for one output target. Plain mode
// skips all styling and emits raw markdown, for piped output.
type Renderer struct {
	markdown *glamour.TermRenderer
	width    int
	plain    bool
}

// New creates a renderer for the given terminal width. Pass plain=true
// to disable ANSI styling entirely. theme is a glamour style name
// ("dark", "light", "notty"); empty auto-detects.
func New(width int, plain bool, theme string) *Renderer {
	if width < 40 {
		width = 80
	}
	r := &Renderer{width: width, plain: plain}
	if plain {
		return r
	}
	style := glamour.WithAutoStyle()
	if theme != "" {
		style = glamour.WithStylePath(theme)
	}
	r.markdown, _ = glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(width-4), // small margin for safety
	)
	return r
}

// Markdown converts markdown text to styled ANSI output. In plain mode,
// or if rendering fails, the text comes back unchanged.
func (r *Renderer) Markdown(md string) string {
	if r.plain || r.markdown == nil {
		return md
	}
	out, err := r.markdown.Render(md)
	if err != nil {
		return md
	}
	// glamour often adds trailing newlines; trim for tighter display.
	return strings.TrimRight(out, "\n")
}

// styled applies style only when styling is on.
func (r *Renderer) styled(s styler, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

// styler is the subset of lipgloss.Style the renderer needs.
type styler interface {
	Render(...string) string
}
