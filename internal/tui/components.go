package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderBranding renders the page title shown at the right of the status line.
func (m *DashboardModel) renderBranding() string {
	return lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorBlue).
		Bold(true).
		Render(m.brand.Title)
}

// tooltip returns the label shown for the focused entry while the panel is
// collapsed, since entry labels are not drawn then.
func (m *DashboardModel) tooltip() string {
	if m.nav.Expanded() || m.activeSection != SectionSidebar {
		return ""
	}
	entry := m.nav.Entry(m.focusIdx)
	return entry.Icon.Glyph() + " " + entry.Label
}

// renderStatusLine renders the status/help line at the bottom of the content area.
func (m *DashboardModel) renderStatusLine(width int) string {
	baseStyle := lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite)

	narrow := width < 80
	medium := width < 110

	var leftText string
	if tip := m.tooltip(); tip != "" {
		leftText = tip
	} else {
		leftText = fmt.Sprintf("[%s]", m.nav.Active())
	}

	var statusText string
	switch {
	case m.HasModal():
		statusText = "ESC: Close"
	case narrow:
		statusText = "?: Help • a: Sidebar • q: Quit"
	case medium:
		statusText = "?: Help • ↑↓: Focus • Enter: Open • a: Sidebar • q: Quit"
	default:
		statusText = "?: Help • Click entries • ↑↓: Focus • Enter/1-8: Open • Tab: Switch focus • a: Sidebar • q: Quit"
	}

	toggleGlyph := glyphCollapse
	if !m.nav.Expanded() {
		toggleGlyph = glyphExpand
	}
	rightText := fmt.Sprintf("%s %s", toggleGlyph, m.nav.ToggleLabel())
	if !narrow {
		rightText += "  " + m.renderBranding()
	}

	left := baseStyle.Bold(true).Render(" " + leftText + " ")
	right := baseStyle.Render(" " + rightText + " ")
	centerWidth := width - lipgloss.Width(left) - lipgloss.Width(right)
	if centerWidth < lipgloss.Width(statusText) {
		statusText = ""
	}
	center := baseStyle.Width(max(centerWidth, 0)).Align(lipgloss.Center).Render(statusText)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, center, right)
}
