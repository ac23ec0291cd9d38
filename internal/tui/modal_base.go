package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// renderModalFrame renders content in a scrollable, centred modal with a
// title above the viewport and a status bar below it.
func renderModalFrame(vp *viewport.Model, title, content string, statusItems []string, width, height int) string {
	modalWidth := width - 8   // 4 chars margin on each side
	modalHeight := height - 4 // 2 lines margin top and bottom

	// Account for borders and headers
	contentWidth := modalWidth - 4
	contentHeight := modalHeight - 4

	vp.Width = contentWidth
	vp.Height = contentHeight
	vp.SetContent(lipgloss.NewStyle().Width(contentWidth).Render(content))

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Render(vp.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorBlue).
		Bold(true).
		Render(title)

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, renderModalStatusBar(statusItems))

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

// renderModalStatusBar renders the status bar for modals
func renderModalStatusBar(items []string) string {
	return lipgloss.NewStyle().
		Foreground(ColorGray).
		Render(strings.Join(items, " | "))
}
