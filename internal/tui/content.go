package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tinytelemetry/pulse/internal/model"
)

const metricsMinCardWidth = 18

func renderButton(a model.Action) string {
	style := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	if a.Primary {
		style = style.BorderForeground(ColorBlue).Foreground(ColorBlue).Bold(true)
	} else {
		style = style.BorderForeground(ColorGray).Foreground(ColorWhite)
	}
	return style.Render(a.Label)
}

func eyebrow(text string) string {
	return lipgloss.NewStyle().Foreground(ColorBlue).Bold(true).Render(strings.ToUpper(text))
}

func (m *DashboardModel) renderContentHeader(width int) string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(ColorWhite).Render(m.page.Heading)
	blurb := lipgloss.NewStyle().Foreground(ColorGray).Width(width).Render(m.page.Blurb)

	buttons := make([]string, 0, len(m.page.Actions))
	for _, a := range m.page.Actions {
		buttons = append(buttons, renderButton(a), " ")
	}
	actions := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)

	return lipgloss.JoinVertical(lipgloss.Left,
		eyebrow(m.page.Eyebrow),
		heading,
		blurb,
		actions,
	)
}

func renderMetricCard(metric model.Metric, width int) string {
	inner := max(width-4, 1)
	title := lipgloss.NewStyle().Foreground(ColorGray).Render(ansi.Truncate(metric.Title, inner, "…"))
	delta := lipgloss.NewStyle().Foreground(ColorGreen).Render(metric.Delta)
	value := lipgloss.NewStyle().Bold(true).Foreground(ColorWhite).Render(metric.Value)
	desc := lipgloss.NewStyle().Foreground(ColorGray).Render(ansi.Truncate(metric.Description, inner, "…"))

	return lipgloss.NewStyle().
		Width(width-2).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorGray).
		Render(lipgloss.JoinVertical(lipgloss.Left, padBetween(title, delta, inner), value, desc))
}

// renderMetrics lays cards out in a row, falling back to a column when the
// panel is too narrow.
func (m *DashboardModel) renderMetrics(width int) string {
	n := len(m.page.Metrics)
	if n == 0 {
		return ""
	}

	cardWidth := width / n
	cards := make([]string, 0, n)
	if cardWidth < metricsMinCardWidth {
		for _, metric := range m.page.Metrics {
			cards = append(cards, renderMetricCard(metric, width))
		}
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	for _, metric := range m.page.Metrics {
		cards = append(cards, renderMetricCard(metric, cardWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderTimelineCard(entry model.TimelineEntry, width int) string {
	pill := lipgloss.NewStyle().Foreground(ColorNavy).Background(ColorBlue).Padding(0, 1).Render(entry.Pill)
	stamp := lipgloss.NewStyle().Foreground(ColorGray).Render(entry.Timestamp)
	title := lipgloss.NewStyle().Bold(true).Foreground(ColorWhite).Render(ansi.Truncate(entry.Title, width, "…"))
	desc := lipgloss.NewStyle().Foreground(ColorGray).Render(ansi.Truncate(entry.Description, width, "…"))

	return lipgloss.JoinVertical(lipgloss.Left, pill+" "+stamp, title, desc)
}

func (m *DashboardModel) renderTimeline(width int) string {
	inner := max(width-4, 1)

	heading := lipgloss.JoinVertical(lipgloss.Left,
		eyebrow(m.page.TimelineLabel),
		lipgloss.NewStyle().Bold(true).Foreground(ColorWhite).Render(m.page.TimelineTitle),
	)
	button := renderButton(m.page.TimelineAction)
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		lipgloss.NewStyle().Width(max(inner-lipgloss.Width(button), 1)).Render(heading),
		button,
	)

	parts := []string{header}
	for _, entry := range m.page.Timeline {
		parts = append(parts, "", renderTimelineCard(entry, inner))
	}

	return lipgloss.NewStyle().
		Width(width-2).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorGray).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderContent renders the host page into a width x height block.
func (m *DashboardModel) renderContent(width, height int) string {
	inner := max(width-2, 1)

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.renderContentHeader(inner),
		"",
		m.renderMetrics(inner),
		m.renderTimeline(inner),
	)

	block := lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Padding(0, 1).
		Render(body)

	return m.zones.Mark(m.contentZoneID(), block)
}
