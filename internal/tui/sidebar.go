package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	glyphCollapse = "«"
	glyphExpand   = "»"
	focusMarker   = "›"

	sidebarHeaderRows = 3
	sidebarFooterRows = 2
)

func (m *DashboardModel) toggleZoneID() string  { return m.zonePrefix + "toggle" }
func (m *DashboardModel) contentZoneID() string { return m.zonePrefix + "content" }

func (m *DashboardModel) entryZoneID(idx int) string {
	return fmt.Sprintf("%sentry-%d", m.zonePrefix, idx)
}

// sidebarWidth is the panel width on the current animation frame.
func (m *DashboardModel) sidebarWidth() int {
	return m.motion.Width()
}

// entryRows returns how many rows each entry takes: two when the
// description fits, one otherwise.
func entryRows(innerHeight, entries int) int {
	if innerHeight >= sidebarHeaderRows+2*entries+1+sidebarFooterRows {
		return 2
	}
	return 1
}

// padBetween lays out left and right on one line of exactly width cells.
func padBetween(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left+" "+right, width, "")
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *DashboardModel) renderToggle() string {
	glyph := glyphCollapse
	if !m.nav.Expanded() {
		glyph = glyphExpand
	}
	btn := lipgloss.NewStyle().
		Foreground(ColorBlue).
		Bold(true).
		Render(glyph)
	return m.zones.Mark(m.toggleZoneID(), btn)
}

func (m *DashboardModel) renderSidebarHeader(inner int, textVisible bool) []string {
	toggle := m.renderToggle()
	if !textVisible {
		return []string{
			lipgloss.PlaceHorizontal(inner, lipgloss.Center, toggle),
			"",
			"",
		}
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(ColorWhite).
		Render(ansi.Truncate(m.brand.Title, inner-2, "…"))
	subtitle := lipgloss.NewStyle().Foreground(ColorGray).
		Render(ansi.Truncate(m.brand.Subtitle, inner, "…"))

	return []string{
		padBetween(title, toggle, inner),
		subtitle,
		"",
	}
}

func (m *DashboardModel) renderEntry(idx, inner, rows int, textVisible bool) string {
	entry := m.nav.Entry(idx)
	active := m.nav.IsActive(entry.Label)
	focused := m.activeSection == SectionSidebar && m.focusIdx == idx

	marker := " "
	if focused {
		marker = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true).Render(focusMarker)
	}

	glyphStyle := lipgloss.NewStyle().Foreground(ColorGray)
	if active {
		glyphStyle = glyphStyle.Foreground(ColorBlue)
	}
	glyph := glyphStyle.Render(entry.Icon.Glyph())

	row := lipgloss.NewStyle().Width(inner)
	if active {
		row = row.Background(ColorHighlight)
	}

	lines := make([]string, 0, rows)
	if !textVisible {
		lines = append(lines, row.Render(marker+" "+glyph))
		for len(lines) < rows {
			lines = append(lines, row.Render(""))
		}
		return m.zones.Mark(m.entryZoneID(idx), strings.Join(lines, "\n"))
	}

	labelStyle := lipgloss.NewStyle().Foreground(ColorWhite)
	if active {
		labelStyle = labelStyle.Bold(true)
	}

	var badge string
	if entry.HasBadge() {
		badge = lipgloss.NewStyle().Foreground(ColorOrange).Bold(true).Render(entry.Badge)
	}

	prefix := marker + " " + glyph + "  "
	room := inner - lipgloss.Width(prefix) - lipgloss.Width(badge) - 1
	label := labelStyle.Render(ansi.Truncate(entry.Label, max(room, 1), "…"))
	lines = append(lines, row.Render(padBetween(prefix+label, badge, inner)))

	if rows > 1 {
		indent := strings.Repeat(" ", lipgloss.Width(prefix))
		desc := ansi.Truncate(entry.Description, max(inner-len(indent), 1), "…")
		lines = append(lines, row.Render(indent+lipgloss.NewStyle().Foreground(ColorGray).Render(desc)))
	}

	return m.zones.Mark(m.entryZoneID(idx), strings.Join(lines, "\n"))
}

func (m *DashboardModel) renderSidebarFooter(inner int, textVisible bool) []string {
	avatar := lipgloss.NewStyle().
		Background(ColorBlue).
		Foreground(ColorWhite).
		Bold(true).
		Render(m.profile.Initials)

	if !textVisible {
		return []string{lipgloss.PlaceHorizontal(inner, lipgloss.Center, avatar), ""}
	}

	room := inner - lipgloss.Width(avatar) - 2
	name := lipgloss.NewStyle().Bold(true).Foreground(ColorWhite).
		Render(ansi.Truncate(m.profile.Name, max(room, 1), "…"))
	role := lipgloss.NewStyle().Foreground(ColorGray).
		Render(ansi.Truncate(m.profile.Role, max(room, 1), "…"))
	indent := strings.Repeat(" ", lipgloss.Width(avatar)+2)

	return []string{avatar + "  " + name, indent + role}
}

// buildSidebarLines renders the panel body for the given inner size.
func (m *DashboardModel) buildSidebarLines(inner, innerHeight int) []string {
	textVisible := m.motion.TextVisible()
	rows := entryRows(innerHeight, m.nav.Len())

	lines := m.renderSidebarHeader(inner, textVisible)
	for i := 0; i < m.nav.Len(); i++ {
		lines = append(lines, m.renderEntry(i, inner, rows, textVisible))
	}

	footer := m.renderSidebarFooter(inner, textVisible)
	used := 0
	for _, l := range lines {
		used += lipgloss.Height(l)
	}
	for spare := innerHeight - used - len(footer); spare > 0; spare-- {
		lines = append(lines, "")
	}
	return append(lines, footer...)
}

// renderSidebar renders the navigation panel at its current animated width.
func (m *DashboardModel) renderSidebar(height int) string {
	width := m.sidebarWidth()
	inner := max(width-4, 1)

	style := lipgloss.NewStyle().
		Width(width-2).
		Height(height).
		MaxHeight(height+2).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Padding(0, 1)

	if m.activeSection == SectionSidebar {
		style = style.BorderForeground(ColorBlue)
	}

	lines := m.buildSidebarLines(inner, height)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
