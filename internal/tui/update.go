package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)

	case motionFrameMsg:
		return m, m.handleMotionFrame()
	}

	return m, nil
}

// handleMouseEvent processes mouse interactions
func (m *DashboardModel) handleMouseEvent(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Modal on stack gets the mouse event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		return m.handleMouseClick(msg)

	case tea.MouseButtonWheelUp:
		if m.reverseScrollWheel {
			m.moveFocus(1)
		} else {
			m.moveFocus(-1)
		}
		return m, nil

	case tea.MouseButtonWheelDown:
		if m.reverseScrollWheel {
			m.moveFocus(-1)
		} else {
			m.moveFocus(1)
		}
		return m, nil
	}

	return m, nil
}

// handleMouseClick resolves a click against the zones marked during the
// last render: the toggle button, then each navigation entry.
func (m *DashboardModel) handleMouseClick(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.width <= 0 || m.height <= 0 {
		return m, nil
	}

	if m.inZone(m.toggleZoneID(), msg) {
		m.activeSection = SectionSidebar
		return m, m.toggleSidebar()
	}

	for i := 0; i < m.nav.Len(); i++ {
		if m.inZone(m.entryZoneID(i), msg) {
			return m, m.selectEntry(i)
		}
	}

	if m.inZone(m.contentZoneID(), msg) {
		m.activeSection = SectionContent
	}
	return m, nil
}

func (m *DashboardModel) inZone(id string, msg tea.MouseMsg) bool {
	if m.zones == nil {
		return false
	}
	z := m.zones.Get(id)
	if z == nil || z.IsZero() {
		return false
	}
	return z.InBounds(msg)
}
