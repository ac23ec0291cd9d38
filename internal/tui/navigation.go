package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyPress dispatches key events: modal stack first, then global
// dashboard shortcuts.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Modal on stack gets the event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	return m.handleGlobalKeys(msg)
}

// handleGlobalKeys handles dashboard-level shortcuts.
// Only reached when no modal is on the stack.
func (m *DashboardModel) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.PushModal(NewHelpModal(m))
		return m, nil

	case key.Matches(msg, k.NextSection):
		if m.activeSection == SectionSidebar {
			m.activeSection = SectionContent
		} else {
			m.activeSection = SectionSidebar
		}
		return m, nil

	case key.Matches(msg, k.ToggleSidebar):
		return m, m.toggleSidebar()

	case key.Matches(msg, k.Jump):
		n, err := strconv.Atoi(msg.String())
		if err != nil || n < 1 || n > m.nav.Len() {
			return m, nil
		}
		return m, m.selectEntry(n - 1)
	}

	// Sidebar navigation
	if m.activeSection == SectionSidebar {
		switch {
		case key.Matches(msg, k.Up):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(msg, k.Down):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, k.Home):
			m.focusIdx = 0
			return m, nil
		case key.Matches(msg, k.End):
			m.focusIdx = m.nav.Len() - 1
			return m, nil
		case key.Matches(msg, k.Select):
			return m, m.selectEntry(m.focusIdx)
		}
	}

	return m, nil
}
