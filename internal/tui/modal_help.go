package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

// renderHelpModalWithViewport renders the help modal using the provided viewport.
func (m *DashboardModel) renderHelpModalWithViewport(vp *viewport.Model, width, height int) string {
	if m.markdown == nil {
		m.markdown = newMarkdownRenderer(markdownStyle)
	}
	// Modal margins and borders take 12 columns, glamour's own margin 4 more.
	content := m.markdown.Render(m.renderHelpModalContent(), width-16)

	status := []string{"up/down/Wheel: Scroll", "PgUp/PgDn: Page", "?/h: Toggle Help", "ESC: Close"}
	return renderModalFrame(vp, "Help", content, status, width, height)
}

func helpRow(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("| `%s` | %s |\n", h.Key, h.Desc)
}

// renderHelpModalContent returns the help page as markdown generated from
// the key map and the entry list.
func (m *DashboardModel) renderHelpModalContent() string {
	k := m.keys
	var b strings.Builder

	fmt.Fprintf(&b, "# %s · %s\n\n", m.brand.Title, m.meta.Title)

	b.WriteString("## Sidebar\n\n| Key | Action |\n| --- | --- |\n")
	for _, binding := range []key.Binding{k.ToggleSidebar, k.Up, k.Down, k.Home, k.End, k.Select, k.Jump} {
		b.WriteString(helpRow(binding))
	}
	fmt.Fprintf(&b, "| Mouse click | open an entry, or %s / %s to collapse/expand |\n", glyphCollapse, glyphExpand)
	b.WriteString("| Mouse wheel | move the focus ring |\n\n")

	b.WriteString("## General\n\n| Key | Action |\n| --- | --- |\n")
	for _, binding := range []key.Binding{k.NextSection, k.Help, k.Escape, k.Quit, k.ForceQuit} {
		b.WriteString(helpRow(binding))
	}

	b.WriteString("\n## Entries\n\n| # | Entry | Description | Badge |\n| --- | --- | --- | --- |\n")
	for i, e := range m.nav.Entries() {
		fmt.Fprintf(&b, "| %d | %s %s | %s | %s |\n", i+1, e.Icon.Glyph(), e.Label, e.Description, e.Badge)
	}

	b.WriteString("\nWhile collapsed only icons are drawn; the status line shows the focused entry's label.\n")
	return b.String()
}
