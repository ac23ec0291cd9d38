package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	minWidth  = 60
	minHeight = 20
)

// contentWidth returns the width available for the host page, accounting
// for the sidebar's current animated width.
func (m *DashboardModel) contentWidth() int {
	return max(m.width-m.sidebarWidth(), 0)
}

// View renders the dashboard
func (m *DashboardModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing dashboard..."
	}

	// If a modal is on the stack, render it full-screen.
	if modal := m.TopModal(); modal != nil {
		return m.zones.Scan(modal.View(m.width, m.height))
	}

	return m.zones.Scan(m.renderDashboard())
}

// renderDashboard renders sidebar, host page and status line.
func (m *DashboardModel) renderDashboard() string {
	if m.height < minHeight || m.width < minWidth {
		return "Terminal too small. Resize to at least 60x20."
	}

	contentWidth := m.contentWidth()
	statusLineHeight := 1

	content := m.renderContent(contentWidth, m.height-statusLineHeight)
	statusLine := m.renderStatusLine(contentWidth)
	contentArea := lipgloss.JoinVertical(lipgloss.Left, content, statusLine)

	sidebar := m.renderSidebar(m.height - 2)
	result := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, contentArea)

	return lipgloss.NewStyle().
		MaxWidth(m.width).
		MaxHeight(m.height).
		Render(result)
}
