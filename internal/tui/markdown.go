package tui

import (
	"log"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Built-in glamour style used for markdown panes; every bundled skin is dark.
const markdownStyle = "dark"

// markdownRenderer renders markdown for modal panes, rebuilding the
// glamour renderer only when the wrap width changes.
type markdownRenderer struct {
	renderer *glamour.TermRenderer
	width    int
	style    string
}

func newMarkdownRenderer(style string) *markdownRenderer {
	return &markdownRenderer{style: style}
}

// Render wraps md to width. On failure the raw markdown is returned.
func (r *markdownRenderer) Render(md string, width int) string {
	if width <= 0 {
		return md
	}
	if r.renderer == nil || width != r.width {
		tr, err := glamour.NewTermRenderer(
			glamour.WithStylePath(r.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			log.Printf("tui: markdown renderer: %v", err)
			return md
		}
		r.renderer = tr
		r.width = width
	}

	out, err := r.renderer.Render(md)
	if err != nil {
		log.Printf("tui: markdown render: %v", err)
		return md
	}
	return strings.Trim(out, "\n")
}
